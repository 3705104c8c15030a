package config

import (
	"github.com/datastax/action-table/log"
)

// DefaultActionsHeader is the label of the actions column when none is configured.
const DefaultActionsHeader = "Actions"

type Config interface {
	Naming() NamingConvention
	ActionsHeader() string
	Logger() log.Logger
}
