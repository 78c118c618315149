package db_models

type AccountStatus string

const (
	AccountActive    AccountStatus = "active"
	AccountNotActive AccountStatus = "not_active"
)

type BusinessStatus string

const (
	BusinessActive    BusinessStatus = "active"
	BusinessNotActive BusinessStatus = "not_active"
)

type BusinessType string

const (
	BusinessIndividual     BusinessType = "individual"
	BusinessLLC            BusinessType = "llc"
	BusinessSoleProprietor BusinessType = "sole_proprietor"
)

// RoleAccess is the permission level a business role grants.
type RoleAccess string

const (
	RoleAllAccess RoleAccess = "all_access"
	RoleReadOnly  RoleAccess = "read_only"
)

type MemberType string

const (
	MemberOwner MemberType = "owner"
	MemberStaff MemberType = "staff"
)

type ClientStatus string

const (
	ClientNew        ClientStatus = "new"
	ClientInProgress ClientStatus = "in_progress"
	ClientInArchive  ClientStatus = "in_archive"
)

type CategoryColor string

const (
	ColorRed    CategoryColor = "red"
	ColorYellow CategoryColor = "yellow"
	ColorPurple CategoryColor = "purple"
	ColorBlue   CategoryColor = "blue"
	ColorPink   CategoryColor = "pink"
	ColorGreen  CategoryColor = "green"
)

type TransactionType string

const (
	TxnExpense TransactionType = "expense"
	TxnAccrual TransactionType = "accrual"
)
