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

// Package mapper resolves a (code, reason) pair taken from a diagnosable
// error into transport statuses for HTTP and gRPC.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the code;
//  2. longest matching reason prefix registered for the code;
//  3. per-code default;
//  4. fallback (500 / codes.Internal unless changed with WithFallback).
//
// Prefix rules are segment-aware: reasons are "."-separated and "*" matches
// exactly one segment. Between two prefixes of the same length, the one with
// more literal segments wins:
//
//	mapper.WithHTTPPrefix(code.Aborted, "nullable.*.incomplete", 500)
//	mapper.WithHTTPPrefix(code.Aborted, "nullable.map.incomplete", 422) // wins for Map failures
//
// # Defaults
//
// Every code in package code has a default. The container's own codes map
// to client errors when the caller misused the container (missing, invalid:
// 400 / InvalidArgument) and to 500 / Aborted when a user callback failed.
//
// # Configuration files
//
// Rules can live in YAML and be loaded with ParseYAML, LoadFile or FromYAML;
// see File for the format. Options passed after the file ones win.
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of the tier that matched and,
// for prefixes, the pattern that was used.
//
// A Mapper is immutable after New and safe to share between goroutines.
package mapper
