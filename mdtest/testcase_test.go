package mdtest

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

const sampleDoc = "# Compiler tests\n" +
	"\n" +
	"Prose between tests is ignored.\n" +
	"\n" +
	"## Test: addition\n" +
	"\n" +
	"```expr\n" +
	"1+2;\n" +
	"```\n" +
	"\n" +
	"```ast\n" +
	"(program (binary \"+\" (integer 1) (integer 2)))\n" +
	"```\n" +
	"\n" +
	"```exit\n" +
	"3\n" +
	"```\n" +
	"\n" +
	"## Test: bad input\n" +
	"\n" +
	"```expr\n" +
	"1+;\n" +
	"```\n" +
	"\n" +
	"```compile-error\n" +
	"parse error\n" +
	"```\n"

func TestExtractTestCases(t *testing.T) {
	testCases, err := ExtractTestCases(sampleDoc)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 2)

	add := testCases[0]
	be.Equal(t, add.Name, "addition")
	be.Equal(t, add.Input, "1+2;")
	be.Equal(t, len(add.Assertions), 2)
	be.Equal(t, add.Assertions[0].Type, AssertionTypeAST)
	be.Equal(t, add.Assertions[0].Content, "(program (binary \"+\" (integer 1) (integer 2)))")
	be.True(t, add.Assertions[0].Parsed != nil)
	be.Equal(t, add.Assertions[0].Parsed.String(), add.Assertions[0].Content)
	be.Equal(t, add.Assertions[1].Type, AssertionTypeExit)
	be.Equal(t, add.Assertions[1].Content, "3")

	bad := testCases[1]
	be.Equal(t, bad.Name, "bad input")
	be.Equal(t, bad.Input, "1+;")
	be.Equal(t, len(bad.Assertions), 1)
	be.Equal(t, bad.Assertions[0].Type, AssertionTypeCompileError)
	be.Equal(t, bad.Assertions[0].Content, "parse error")
	be.True(t, bad.Assertions[0].Parsed == nil)
}

func TestExtractAsmAssertion(t *testing.T) {
	doc := "## Test: literal\n" +
		"\n" +
		"```expr\n" +
		"42;\n" +
		"```\n" +
		"\n" +
		"```asm\n" +
		"  .globl main\n" +
		"main:\n" +
		"  li a0, 42\n" +
		"  ret\n" +
		"```\n"

	testCases, err := ExtractTestCases(doc)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 1)
	be.Equal(t, testCases[0].Assertions[0].Type, AssertionTypeAsm)
	be.Equal(t, testCases[0].Assertions[0].Content,
		"  .globl main\nmain:\n  li a0, 42\n  ret")
}

func TestExtractRejectsTestWithoutInput(t *testing.T) {
	doc := "## Test: missing input\n" +
		"\n" +
		"```exit\n" +
		"0\n" +
		"```\n"

	_, err := ExtractTestCases(doc)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "no expr fence"))
}

func TestExtractRejectsTestWithoutAssertions(t *testing.T) {
	doc := "## Test: missing assertions\n" +
		"\n" +
		"```expr\n" +
		"1;\n" +
		"```\n"

	_, err := ExtractTestCases(doc)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "no assertion fences"))
}

func TestExtractRejectsUnknownFence(t *testing.T) {
	doc := "## Test: unknown fence\n" +
		"\n" +
		"```expr\n" +
		"1;\n" +
		"```\n" +
		"\n" +
		"```wat\n" +
		"nope\n" +
		"```\n"

	_, err := ExtractTestCases(doc)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "unknown fence language"))
}

func TestExtractRejectsDuplicateInput(t *testing.T) {
	doc := "## Test: two inputs\n" +
		"\n" +
		"```expr\n" +
		"1;\n" +
		"```\n" +
		"\n" +
		"```expr\n" +
		"2;\n" +
		"```\n"

	_, err := ExtractTestCases(doc)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "multiple expr fences"))
}

func TestExtractRejectsFenceOutsideTest(t *testing.T) {
	doc := "# Notes\n" +
		"\n" +
		"```expr\n" +
		"1;\n" +
		"```\n"

	_, err := ExtractTestCases(doc)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "outside of test case"))
}

func TestExtractRejectsBadAstAssertion(t *testing.T) {
	doc := "## Test: broken ast\n" +
		"\n" +
		"```expr\n" +
		"1;\n" +
		"```\n" +
		"\n" +
		"```ast\n" +
		"(integer 1\n" +
		"```\n"

	_, err := ExtractTestCases(doc)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "failed to parse ast assertion"))
}

func TestExtractAllowsPlainFences(t *testing.T) {
	doc := "# Notes\n" +
		"\n" +
		"```\n" +
		"just an example block\n" +
		"```\n" +
		"\n" +
		"## Test: after prose\n" +
		"\n" +
		"```expr\n" +
		"1;\n" +
		"```\n" +
		"\n" +
		"```exit\n" +
		"1\n" +
		"```\n"

	testCases, err := ExtractTestCases(doc)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 1)
	be.Equal(t, testCases[0].Name, "after prose")
}
