// Copyright 2022 Silvio Böhler
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package format

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Banner writes success and error messages in distinct colors.
type Banner struct {
	out, err   io.Writer
	green, red *color.Color
}

// NewBanner creates a banner writing successes to out and errors to err.
func NewBanner(out, err io.Writer, enableColor bool) *Banner {
	b := &Banner{
		out:   out,
		err:   err,
		green: color.New(color.FgGreen),
		red:   color.New(color.FgRed),
	}
	if enableColor {
		b.green.EnableColor()
		b.red.EnableColor()
	} else {
		b.green.DisableColor()
		b.red.DisableColor()
	}
	return b
}

// Success writes a success message.
func (b *Banner) Success(msg string) error {
	_, err := b.green.Fprintln(b.out, msg)
	return err
}

// Successf writes a formatted success message.
func (b *Banner) Successf(format string, args ...interface{}) error {
	return b.Success(fmt.Sprintf(format, args...))
}

// Fail writes an error message.
func (b *Banner) Fail(msg string) error {
	_, err := b.red.Fprintln(b.err, msg)
	return err
}

// Error writes the message for err.
func (b *Banner) Error(err error) error {
	return b.Fail(Message(err))
}
