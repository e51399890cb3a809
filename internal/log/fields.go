package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldError         = "error"
	FieldOperation     = "operation"
	FieldBackend       = "backend"
	FieldTransactionID = "transaction_id"
	FieldType          = "type"
	FieldCategory      = "category"
	FieldAmount        = "amount"
	FieldBalance       = "balance"
	FieldWindow        = "window"
	FieldCount         = "count"
	FieldPath          = "path"
	FieldDuration      = "duration_ms"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentWallet = "wallet"
	ComponentLedger = "ledger"
	ComponentStore  = "store"
	ComponentScan   = "scan"
	ComponentExport = "export"
	ComponentTUI    = "tui"
)

// Operations defines standard operation names
const (
	OpRecord       = "record"
	OpDelete       = "delete"
	OpCorrect      = "correct_balance"
	OpProfile      = "update_profile"
	OpClear        = "clear_notifications"
	OpTheme        = "toggle_theme"
	OpLoad         = "load"
	OpSave         = "save"
	OpScan         = "scan"
	OpExportRows   = "export"
	OpStartup      = "startup"
	OpShutdown     = "shutdown"
)
