// SPDX-License-Identifier: MIT

package option

import "errors"

// ErrInvalidArgument is returned by Value when the Option holds nothing.
var ErrInvalidArgument = errors.New("option: value requested from empty option")
