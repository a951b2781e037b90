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

package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/sboehler/atm/cmd/cmdtest"
)

func TestGolden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "all",
			args: []string{"--color=false", "testdata/session.yaml"},
		},
		{
			name: "withdrawals",
			args: []string{
				"--color=false",
				"--kind", "withdrawal",
				"--date", "2016-01-06",
				"--lowest-after", "2016-01-06",
				"--signed=false",
				"testdata/session.yaml",
			},
		},
		{
			name: "csv",
			args: []string{"--color=false", "--csv", "--on", "2016-01-05", "testdata/session.yaml"},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			got := cmdtest.Run(t, CreateCmd(), test.args)

			goldie.New(t).Assert(t, test.name, got)
		})
	}
}

func TestOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.txt")

	stdout := cmdtest.Run(t, CreateCmd(), []string{"--color=false", "-o", out, "testdata/session.yaml"})

	if len(stdout) > 0 {
		t.Fatalf("unexpected output on stdout: %q", stdout)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("os.ReadFile(%q) returned unexpected error: %v", out, err)
	}
	goldie.New(t).Assert(t, "all", got)
}
