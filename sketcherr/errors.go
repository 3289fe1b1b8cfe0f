/*
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package sketcherr defines the failure categories shared by every sketch
// family, so callers can distinguish a malformed argument from a corrupt
// serialized image from a constraint the active storage can't satisfy.
package sketcherr

import (
	"errors"
	"fmt"
)

// Kind classifies a sketch error. See package docs.
type Kind int

const (
	// InvalidParameter: a caller-supplied argument is out of range, e.g.
	// a non-power-of-two k, nStdDev not in {1,2,3}, or a quantile
	// fraction outside [0,1].
	InvalidParameter Kind = iota
	// InvalidSerializedImage: a byte image failed preamble/family/version
	// validation during Heapify/Wrap.
	InvalidSerializedImage
	// CapacityExceeded: a direct sketch's backing region is too small
	// for the operation being attempted (e.g. promoting to HLL mode).
	CapacityExceeded
	// IllegalState: an operation is not valid given the sketch's current
	// state, e.g. Update on a compact sketch.
	IllegalState
)

func (k Kind) String() string {
	switch k {
	case InvalidParameter:
		return "InvalidParameter"
	case InvalidSerializedImage:
		return "InvalidSerializedImage"
	case CapacityExceeded:
		return "CapacityExceeded"
	case IllegalState:
		return "IllegalState"
	default:
		return "Unknown"
	}
}

// Error is a classified sketch error.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.msg) }

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err (or an error it wraps) is a sketcherr.Error of kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
