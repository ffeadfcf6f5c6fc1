// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package rewrite implements rule-driven simplification of expressions.  A
// rule pairs a pattern with a replacement template (or a transform function);
// rule sets are validated eagerly at load time and applied repeatedly,
// bottom-up, until no rule fires anywhere in the tree or an explicit
// iteration budget runs out.  Reaching the budget is a documented best-effort
// termination mode, not an error: the engine always returns the last
// (equivalent) expression produced.
package rewrite
