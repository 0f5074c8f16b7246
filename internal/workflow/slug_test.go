package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/git-workflow/internal/workflow"
)

func TestSlug(testInstance *testing.T) {
	testCases := []struct {
		name     string
		words    []string
		expected string
	}{
		{name: "separate_words", words: []string{"a", "b", "c"}, expected: "a-b-c"},
		{name: "multi_word_token", words: []string{"multi word", "token"}, expected: "multi-word-token"},
		{name: "leading_hyphen", words: []string{"-leading", "dash"}, expected: "leading-dash"},
		{name: "trailing_hyphen", words: []string{"trailing-", "dash-"}, expected: "trailing-dash"},
		{name: "hyphen_runs", words: []string{"a--b", "  ", "c"}, expected: "a-b-c"},
		{name: "tabs_and_newlines", words: []string{"add\tlogin\nform"}, expected: "add-login-form"},
		{name: "empty", words: nil, expected: ""},
		{name: "only_separators", words: []string{"- -", " "}, expected: ""},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			slug := workflow.Slug(testCase.words)
			require.Equal(testInstance, testCase.expected, slug)
			require.Equal(testInstance, slug, workflow.Slug([]string{slug}))
		})
	}
}
