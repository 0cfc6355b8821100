package pathutils_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/assetcheck/internal/utils/path"
)

const (
	testHomeDirectoryConstant = "/home/tester"
)

func TestHomeExpanderExpand(testInstance *testing.T) {
	testCases := []struct {
		name          string
		candidatePath string
		expectedPath  string
	}{
		{name: "tilde_only", candidatePath: "~", expectedPath: testHomeDirectoryConstant},
		{name: "tilde_prefix", candidatePath: "~/project/src/main/resources", expectedPath: filepath.Join(testHomeDirectoryConstant, "project", "src", "main", "resources")},
		{name: "relative_path", candidatePath: "src/main/resources/", expectedPath: "src/main/resources/"},
		{name: "other_user", candidatePath: "~someone/resources", expectedPath: "~someone/resources"},
		{name: "empty", candidatePath: "", expectedPath: ""},
	}

	expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return testHomeDirectoryConstant, nil
	})

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedPath, expander.Expand(testCase.candidatePath))
		})
	}
}

func TestHomeExpanderKeepsPathWhenHomeUnavailable(testInstance *testing.T) {
	expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return "", errors.New("home not set")
	})

	require.Equal(testInstance, "~/resources", expander.Expand("~/resources"))
}

func TestHomeExpanderExpandAll(testInstance *testing.T) {
	expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return testHomeDirectoryConstant, nil
	})

	expandedPaths := expander.ExpandAll("~/Helper.kt", "resources")
	require.Equal(testInstance, []string{filepath.Join(testHomeDirectoryConstant, "Helper.kt"), "resources"}, expandedPaths)
}
