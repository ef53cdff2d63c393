package handlers

import "github.com/Station-Manager/mapper"

// Register installs the built-in handlers into reg under their schema file names.
func Register(reg *mapper.Registry) {
	reg.Register("upper", Upper)
	reg.Register("lower", Lower)
	reg.Register("trim", TrimSpace)
	reg.Register("join", Join(" "))
	reg.Register("csv", Join(","))
	reg.Register("coalesce", Coalesce)
	reg.Register("date", Date)
	reg.Register("time", Time)
	reg.Register("nullstring", NullString)
	reg.Register("nullbool", NullBool)
	reg.Register("fromnull", FromNull)
}

// NewRegistry returns a registry preloaded with the built-in handlers.
func NewRegistry() *mapper.Registry {
	reg := mapper.NewRegistry()
	Register(reg)
	return reg
}
