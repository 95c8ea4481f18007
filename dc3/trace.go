// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package dc3

import "github.com/rs/zerolog"

// logger receives step-by-step construction traces: tuple counts, the
// input size of each recursive call, the winning side at each merge step,
// and each LPF value as the sweep produces it. It defaults to a
// no-op logger, so tracing costs nothing unless a caller opts in with
// SetLogger. This replaces the compile-time "#if DEBUG" / LOG_MESSAGE
// macros of the original C implementation with a runtime seam.
var logger = zerolog.Nop()

// SetLogger installs l as the package-wide trace logger. Pass
// zerolog.Nop() (the default) to disable tracing.
func SetLogger(l zerolog.Logger) {
	logger = l
}
