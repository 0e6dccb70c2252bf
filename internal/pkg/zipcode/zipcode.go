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

// Package zipcode 美国邮编到州的静态映射表。
// 只做号段级别的推导, 不做逐一邮编校验, 推导出的州用于税收和配送判定。
package zipcode

import "strconv"

type zipRange struct {
	lo    int
	hi    int
	state string
}

// 按号段升序排列, 号段之间不重叠。
var zipRanges = []zipRange{
	{501, 544, "NY"}, // Holtsville
	{600, 799, "PR"},
	{800, 899, "VI"},
	{900, 999, "PR"},
	{1000, 2799, "MA"},
	{2800, 2999, "RI"},
	{3000, 3899, "NH"},
	{3900, 4999, "ME"},
	{5000, 5999, "VT"},
	{6000, 6999, "CT"},
	{7000, 8999, "NJ"},
	{10000, 14999, "NY"},
	{15000, 19699, "PA"},
	{19700, 19999, "DE"},
	{20000, 20599, "DC"},
	{20600, 21999, "MD"},
	{22000, 24699, "VA"},
	{24700, 26999, "WV"},
	{27000, 28999, "NC"},
	{29000, 29999, "SC"},
	{30000, 31999, "GA"},
	{32000, 34999, "FL"},
	{35000, 36999, "AL"},
	{37000, 38599, "TN"},
	{38600, 39999, "MS"},
	{40000, 42799, "KY"},
	{43000, 45999, "OH"},
	{46000, 47999, "IN"},
	{48000, 49999, "MI"},
	{50000, 52999, "IA"},
	{53000, 54999, "WI"},
	{55000, 56799, "MN"},
	{57000, 57999, "SD"},
	{58000, 58999, "ND"},
	{59000, 59999, "MT"},
	{60000, 62999, "IL"},
	{63000, 65999, "MO"},
	{66000, 67999, "KS"},
	{68000, 69999, "NE"},
	{70000, 71599, "LA"},
	{71600, 72999, "AR"},
	{73000, 74999, "OK"},
	{75000, 79999, "TX"},
	{80000, 81999, "CO"},
	{82000, 83199, "WY"},
	{83200, 83999, "ID"},
	{84000, 84999, "UT"},
	{85000, 86999, "AZ"},
	{87000, 88499, "NM"},
	{88500, 88599, "TX"},
	{88900, 89999, "NV"},
	{90000, 96699, "CA"},
	{96700, 96899, "HI"},
	{96910, 96932, "GU"},
	{97000, 97999, "OR"},
	{98000, 99499, "WA"},
	{99500, 99999, "AK"},
}

// StateOf 根据五位邮编推导所在州的缩写, 推导不出返回 false。
func StateOf(zip string) (string, bool) {
	if len(zip) < 5 {
		return "", false
	}
	n, err := strconv.Atoi(zip[:5])
	if err != nil {
		return "", false
	}
	for _, r := range zipRanges {
		if n >= r.lo && n <= r.hi {
			return r.state, true
		}
	}
	return "", false
}

// IsDomestic 判断州缩写是否为可送达的国内州或属地。
func IsDomestic(state string) bool {
	_, ok := domesticStates[state]
	return ok
}

var domesticStates = func() map[string]struct{} {
	res := make(map[string]struct{}, len(zipRanges))
	for _, r := range zipRanges {
		res[r.state] = struct{}{}
	}
	return res
}()
