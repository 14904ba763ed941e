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
	"strconv"

	"github.com/sboehler/bank/lib/account"
	"github.com/sboehler/bank/lib/common/table"
)

// AccountsTable creates a table listing the given accounts.
func AccountsTable(accounts []account.Account) *table.Table {
	t := table.New(
		table.Column{Title: "Account No"},
		table.Column{Title: "Name"},
		table.Column{Title: "Type"},
		table.Column{Title: "Balance", Align: table.Right},
	)
	for _, a := range accounts {
		t.AddRow().
			AddText(strconv.Itoa(int(a.Number))).
			AddText(a.Name).
			AddText(a.Type.String()).
			AddNumber(a.Deposit)
	}
	return t
}
