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

package minima

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/sboehler/atm/cmd/cmdtest"
)

func TestGolden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"minimum", []string{"--date", "2016-01-06", "testdata/session.yaml"}},
		{"no-overdraft", []string{"--date", "2016-01-08", "--withdraw", "10.00", "testdata/session.yaml"}},
		{"overdraft", []string{"--date", "2016-01-04", "--withdraw", "100", "testdata/session.yaml"}},
		{"declined", []string{"--date", "2016-01-04", "--withdraw", "200.00", "testdata/session.yaml"}},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := cmdtest.Run(t, CreateCmd(), test.args)

			goldie.New(t).Assert(t, test.name, got)
		})
	}
}
