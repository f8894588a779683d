// Package display renders reminder-lint output for humans and machines.
//
// Reminders are printed one per line as "<file>:<line> <message>". Expired
// reminders are painted red when the destination is a terminal:
//
//	p := display.NewPrinter(os.Stdout)
//	p.Classified(reminders.Partition(now))
//
// Structured output goes through WriteJSON, which emits the same field names as
// the models package, on a single line:
//
//	display.WriteJSON(os.Stdout, reminders.Partition(now))
//
// Configuration notices use the yellow Warning block:
//
//	display.WarnDeprecation(notice, cfg.File).Display(os.Stderr)
//
// # ANSI Colors
//
// Color is only emitted when the writer is a TTY and NO_COLOR is unset:
//   - Red (\x1b[31m) for expired reminders, failures and missing formats
//   - Green (\x1b[32m) for success messages
//   - Yellow (\x1b[33m) for warnings
//   - Reset (\x1b[0m) after each colored section
//
// All functions accept io.Writer interfaces for testability.
package display
