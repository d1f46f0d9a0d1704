package mdpanel

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// TestProcess_ExampleDocument 测试示例文档的完整处理
func TestProcess_ExampleDocument(t *testing.T) {
	doc, err := Process(context.Background(), ExampleDocument)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if doc.Stats.Headings != 8 {
		t.Errorf("Headings = %d, want 8", doc.Stats.Headings)
	}
	if doc.Stats.CodeBlocks != 1 || doc.Stats.Fences != 2 {
		t.Errorf("CodeBlocks = %d, Fences = %d, want 1 and 2", doc.Stats.CodeBlocks, doc.Stats.Fences)
	}
	// 图片语法同时计为链接
	if doc.Stats.Links != 2 || doc.Stats.Images != 1 {
		t.Errorf("Links = %d, Images = %d, want 2 and 1", doc.Stats.Links, doc.Stats.Images)
	}
	if doc.CharLevel != CharLevelOK {
		t.Errorf("CharLevel = %q, want ok", doc.CharLevel)
	}

	want := []string{"quote block may not be closed"}
	if got := doc.Issues.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("Issues = %v, want %v", got, want)
	}

	for _, frag := range []string{"<h3>Example Document</h3>", "<table ", "<blockquote ", `<pre data-lang="javascript"`, `type="checkbox"`} {
		if !strings.Contains(doc.Markup, frag) {
			t.Errorf("markup missing %q", frag)
		}
	}

	if len(doc.CodeFiles) != 1 || doc.CodeFiles[0].Language != "javascript" {
		t.Fatalf("CodeFiles = %+v", doc.CodeFiles)
	}
	if !strings.HasSuffix(doc.CodeFiles[0].FileName, ".js") {
		t.Errorf("FileName = %q, want .js extension", doc.CodeFiles[0].FileName)
	}
}

// TestProcess_StatsSeeFullInput 测试统计不受输入上限影响
func TestProcess_StatsSeeFullInput(t *testing.T) {
	quietLogger(t)
	cfg := DefaultConfig().Clone()
	cfg.MaxInputBytes = 4
	doc, err := Process(context.Background(), "one two three", WithConfig(cfg))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(doc.Markup, "two") {
		t.Errorf("Markup = %q, want capped input", doc.Markup)
	}
	if doc.Stats.Words != 3 {
		t.Errorf("Words = %d, want 3", doc.Stats.Words)
	}
}

// TestProcess_Clean 测试没有问题时 Issues 为空但非 nil
func TestProcess_Clean(t *testing.T) {
	doc, err := Process(context.Background(), "plain text")
	if err != nil {
		t.Fatal(err)
	}
	if !doc.Issues.Clean() {
		t.Errorf("Issues = %v, want clean", doc.Issues)
	}
	if len(doc.CodeFiles) != 0 {
		t.Errorf("CodeFiles = %v, want none", doc.CodeFiles)
	}
}

// TestProcess_Canceled 测试取消的上下文
func TestProcess_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Process(ctx, "# x"); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

// TestLint_Order 测试 lint 规则顺序
func TestLint_Order(t *testing.T) {
	text := "[](x)\n```\n> q\n" + strings.Repeat("a", 121)
	got := Lint(text, nil)
	want := []IssueKind{IssueEmptyLink, IssueUnterminatedFence, IssueUnclosedQuote, IssueLongLine}
	if len(got) != len(want) {
		t.Fatalf("Lint() = %v", got)
	}
	for i, issue := range got {
		if issue.Kind != want[i] {
			t.Errorf("issue %d kind = %q, want %q", i, issue.Kind, want[i])
		}
	}
	if got[0].Message != "empty link found: 1" {
		t.Errorf("message = %q", got[0].Message)
	}
}

// TestComputeStats_Compat 测试图片计数开关
func TestComputeStats_Compat(t *testing.T) {
	text := "![a](u) [b](v)"
	if got := ComputeStats(text, nil).Links; got != 2 {
		t.Errorf("default Links = %d, want 2", got)
	}
	cfg := DefaultConfig().Clone()
	cfg.Compat.CountImagesAsLinks = false
	if got := ComputeStats(text, cfg).Links; got != 1 {
		t.Errorf("Links = %d, want 1", got)
	}
}

// TestComputeStats_CRLF 测试 CRLF 只影响字符数
func TestComputeStats_CRLF(t *testing.T) {
	crlf, lf := ComputeStats("a\r\nb\r\n", nil), ComputeStats("a\nb\n", nil)
	if crlf.Chars != lf.Chars+2 {
		t.Errorf("Chars = %d, want raw length %d", crlf.Chars, lf.Chars+2)
	}
	if got := ComputeStats("a\r\nb", nil).Chars; got != 4 {
		t.Errorf("Chars = %d, want 4", got)
	}
	crlf.Chars, lf.Chars = 0, 0
	if crlf != lf {
		t.Errorf("CRLF stats %+v != LF stats %+v", crlf, lf)
	}
}

// TestProcess_Repeatable 测试相同输入两次处理结果一致
func TestProcess_Repeatable(t *testing.T) {
	ctx := context.Background()
	for _, opts := range [][]Option{nil, {WithHighlight(HighlightChroma)}, {WithEngine(EngineCommonMark)}} {
		first, err := Process(ctx, ExampleDocument, opts...)
		if err != nil {
			t.Fatal(err)
		}
		second, err := Process(ctx, ExampleDocument, opts...)
		if err != nil {
			t.Fatal(err)
		}
		if first.Markup != second.Markup {
			t.Errorf("Markup differs between calls:\n%q\n%q", first.Markup, second.Markup)
		}
		if first.Stats != second.Stats {
			t.Errorf("Stats differ between calls: %+v != %+v", first.Stats, second.Stats)
		}
		if !reflect.DeepEqual(first.Issues, second.Issues) || !reflect.DeepEqual(first.CodeFiles, second.CodeFiles) {
			t.Error("Issues or CodeFiles differ between calls")
		}
	}
}
