package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree for the cf binary. It mirrors
// the commands wired in Register.
func Completion() *complete.Command {
	recurringFlags := map[string]complete.Predictor{
		"desc":   predict.Something,
		"amount": predict.Something,
		"day":    predict.Something,
	}
	oneTimeFlags := map[string]complete.Predictor{
		"desc":   predict.Something,
		"amount": predict.Something,
		"on":     predict.Something,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"D": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"plan": {Flags: map[string]complete.Predictor{
				"days":      predict.Something,
				"threshold": predict.Something,
				"past":      predict.Nothing,
				"d":         predict.Something,
			}},
			"set-balance": {Flags: map[string]complete.Predictor{
				"d": predict.Something,
			}},
			"balance": {},

			"add-recurring":     {Flags: recurringFlags},
			"list-recurring":    {Flags: map[string]complete.Predictor{"all": predict.Nothing}},
			"edit-recurring":    {Flags: recurringFlags},
			"enable-recurring":  {},
			"disable-recurring": {},
			"delete-recurring":  {},

			"add-onetime":    {Flags: oneTimeFlags},
			"list-onetime":   {Flags: map[string]complete.Predictor{"upcoming": predict.Nothing}},
			"edit-onetime":   {Flags: oneTimeFlags},
			"delete-onetime": {},

			"export": {Flags: map[string]complete.Predictor{
				"format": predict.Set{"json", "csv"},
				"o":      predict.Files("*"),
			}},
			"fmt": {},

			"config":       {},
			"set-data-dir": {},
			"topic":        {},
		},
	}
}
