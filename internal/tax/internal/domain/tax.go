// Copyright 2024 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

// Quote 一次计税结果。Rate 为基点, Amount 为分。
type Quote struct {
	Amount       int64
	Rate         int64
	Jurisdiction string
	// Reason 税额为零时的原因说明, 正常计税时为空
	Reason string
}
