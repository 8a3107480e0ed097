package constants

// Field-level sentinels. An extractor that finds nothing resolves to one of
// these instead of returning an error, so downstream stages never block on a
// missing field.
const (
	// Unknown marks a field whose anchor phrase was absent from the text.
	Unknown = "Unknown"

	// VendorNameCheck is the softer fallback for a single-payee voucher whose
	// party name could not be located but whose text carries a Remarks block.
	VendorNameCheck = "Vendor (Name Check)"

	// SalaryGroupPayment is the literal party name assigned to multi-payee
	// disbursements (e.g. a salary run paying several bank accounts).
	SalaryGroupPayment = "Salary/Group Payment"

	// GeneralCostHead is the final cost-head fallback when neither a slash
	// code nor a Section anchor exists.
	GeneralCostHead = "General"
)

// PaymentType classifies a voucher by payee cardinality.
type PaymentType string

const (
	PaymentVendor PaymentType = "Vendor"
	PaymentSalary PaymentType = "Salary"
)

// EntrySide classifies a positional line item by its horizontal position on
// the page. Empty for records produced by the non-positional path.
type EntrySide string

const (
	SideReceipt EntrySide = "Receipt"
	SideCharge  EntrySide = "Charge"
)

// LedgerHeaders is the canonical column order for the register, both for the
// XLSX export and for validating a previously exported table on reload.
var LedgerHeaders = []string{
	"Date",
	"Month",
	"VR_No",
	"Code_Head",
	"Party_Name",
	"Amount",
	"Entry_Side",
	"Paid",
	"File_Name",
}
