package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestSarif(t *testing.T) {
	bag, fs := listBag(t)
	var buf bytes.Buffer
	meta := SarifRunMeta{ToolName: "clangview", ToolVersion: "1.2.3", InvocationArgs: []string{"diag", "list.c"}}
	if err := Sarif(&buf, bag, fs, meta); err != nil {
		t.Fatalf("sarif: %v", err)
	}
	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 {
		t.Fatalf("log = %+v", log)
	}
	run := log.Runs[0]
	if run.Tool.Driver.Name != "clangview" || len(run.Tool.Driver.Rules) != 1 || run.Tool.Driver.Rules[0].ID != "CLG1001" {
		t.Fatalf("driver = %+v", run.Tool.Driver)
	}
	if len(run.Invocations) != 1 || !run.Invocations[0].ExecutionSuccessful {
		t.Fatalf("invocations = %+v", run.Invocations)
	}
	if len(run.Results) != 1 {
		t.Fatalf("results = %+v", run.Results)
	}
	res := run.Results[0]
	if res.Level != "error" || res.RuleID != "CLG1001" {
		t.Fatalf("result = %+v", res)
	}
	loc := res.Locations[0].PhysicalLocation
	if loc.ArtifactLocation.URI != "src/list.c" {
		t.Fatalf("uri = %q", loc.ArtifactLocation.URI)
	}
	if r := loc.Region; r == nil || r.StartLine != 6 || r.StartColumn != 9 || r.EndColumn != 14 {
		t.Fatalf("region = %+v", loc.Region)
	}
	if len(res.RelatedLocations) != 1 || res.RelatedLocations[0].Message.Text != "previous use is here" {
		t.Fatalf("related = %+v", res.RelatedLocations)
	}
	if len(res.Fixes) != 1 || res.Fixes[0].ArtifactChanges[0].Replacements[0].InsertedContent.Text != "struct" {
		t.Fatalf("fixes = %+v", res.Fixes)
	}
}

func TestSarifEmpty(t *testing.T) {
	bag, fs := listBag(t)
	bag.Filter(255)
	var buf bytes.Buffer
	if err := Sarif(&buf, bag, fs, SarifRunMeta{ToolName: "clangview"}); err != nil {
		t.Fatalf("sarif: %v", err)
	}
	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(log.Runs[0].Results) != 0 || log.Runs[0].Results == nil || len(log.Runs[0].Invocations) != 0 {
		t.Fatalf("run = %+v", log.Runs[0])
	}
}
