// internal/platform/validator/validator_test.go
package validator

import (
	"testing"

	"modelfetch/internal/testutil"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"https", "https://paddlepaddle.github.io/PaddleOCR/", true},
		{"http", "http://mirrors.example.com/simple", true},
		{"empty string", "", false},
		{"no scheme", "github.com/FunAudioLLM/CosyVoice", false},
		{"ftp", "ftp://example.com/file", false},
		{"no host", "https://", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, IsURL(tt.input), tt.expected, "url validation")
		})
	}
}

func TestIsRepoURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"https", "https://github.com/FunAudioLLM/CosyVoice.git", true},
		{"ssh", "ssh://git@github.com/index-tts/index-tts.git", true},
		{"scp-like", "git@github.com:index-tts/index-tts.git", true},
		{"local absolute path", "/srv/mirrors/index-tts", true},
		{"file url", "file:///srv/mirrors/index-tts", true},
		{"host only", "https://github.com", false},
		{"relative path", "index-tts", false},
		{"with spaces", "https://github.com/a b", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, IsRepoURL(tt.input), tt.expected, "repo validation")
		})
	}
}

func TestIsPipRequirement(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"plain name", "multi-tts", true},
		{"versioned", "paddleocr>=2.6,<3", true},
		{"pinned with extras", "torch[cpu]==2.1.0", true},
		{"git url", "git+https://github.com/FunAudioLLM/CosyVoice.git", true},
		{"git url with ref", "git+https://github.com/FunAudioLLM/CosyVoice.git@main", true},
		{"bad git url", "git+not a url", false},
		{"flag", "--upgrade", false},
		{"two packages", "paddleocr paddlepaddle", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, IsPipRequirement(tt.input), tt.expected, "requirement validation")
		})
	}
}

func TestNormalizeRequirement(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Multi_TTS", "multi-tts"},
		{" PaddleOCR>=2.6 ", "paddleocr>=2.6"},
		{"zope.interface[test]", "zope-interface[test]"},
		{"git+https://github.com/FunAudioLLM/CosyVoice.git", "git+https://github.com/FunAudioLLM/CosyVoice.git"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			testutil.AssertEqual(t, NormalizeRequirement(tt.input), tt.expected, "normalized requirement")
		})
	}
}

func TestIsModuleName(t *testing.T) {
	testutil.AssertTrue(t, IsModuleName("paddleocr"), "simple module")
	testutil.AssertTrue(t, IsModuleName("cosyvoice.cli.cosyvoice"), "dotted module")
	testutil.AssertFalse(t, IsModuleName("multi-tts"), "dash is not valid")
	testutil.AssertFalse(t, IsModuleName("1abc"), "leading digit")
	testutil.AssertFalse(t, IsModuleName(""), "empty")
}

func TestIsEnvName(t *testing.T) {
	testutil.AssertTrue(t, IsEnvName("PADDLEX_HOME"), "upper snake")
	testutil.AssertTrue(t, IsEnvName("_private"), "leading underscore")
	testutil.AssertFalse(t, IsEnvName("PADDLE-HOME"), "dash")
	testutil.AssertFalse(t, IsEnvName("1VAR"), "leading digit")
}

func TestGenericValidators(t *testing.T) {
	testutil.AssertTrue(t, MaxLength("abc", 3), "at limit")
	testutil.AssertFalse(t, MaxLength("abcd", 3), "over limit")
}
