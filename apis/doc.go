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

// Package apis holds the small contracts shared by the nullable error
// taxonomy and its transport adapters.
//
// Adapters (grpcx, httpx, logx) program against these interfaces instead of
// the concrete error types, so errors from other packages that implement
// them are projected the same way. The package has no dependencies beyond
// grpc/codes.
package apis
