/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package nullable

import (
	"fmt"
	"runtime"
)

// maxStackDepth bounds how many frames an error records.
const maxStackDepth = 64

// Frame describes one call site.
type Frame struct {
	// FileName is the absolute path of the source file.
	FileName string
	// FunctionName is the package-qualified function name.
	FunctionName string
	// LineNumber is the 1-based line inside FileName.
	LineNumber int
}

// Location returns the frame's fields positionally.
func (f Frame) Location() (file, function string, line int) {
	return f.FileName, f.FunctionName, f.LineNumber
}

// String formats the frame as "<file>#<function> <line> line".
func (f Frame) String() string {
	return fmt.Sprintf("%s#%s %d line", f.FileName, f.FunctionName, f.LineNumber)
}

// captureStack records the current goroutine's stack, most recent call
// first. skip counts frames above captureStack's caller: 0 makes the
// caller of captureStack the first recorded frame.
func captureStack(skip int) []Frame {
	pc := make([]uintptr, maxStackDepth)
	// +2 skips runtime.Callers and captureStack.
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make([]Frame, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			FileName:     fr.File,
			FunctionName: fr.Function,
			LineNumber:   fr.Line,
		})
		if !more {
			break
		}
	}
	return out
}
