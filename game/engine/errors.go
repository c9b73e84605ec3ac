package engine

import "errors"

var (
	errConfigName       = errors.New("config validation: name is required")
	errConfigSalary     = errors.New("config validation: salary must not be negative")
	errConfigBail       = errors.New("config validation: bail must not be negative")
	errConfigStartCash  = errors.New("config validation: start_cash must be positive")
	errConfigMaxPlayers = errors.New("config validation: max_players must allow at least two players")
	errConfigLogLimit   = errors.New("config validation: log_limit must be positive")
)
