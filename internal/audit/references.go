package audit

import (
	"regexp"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	// AssetSuffix is the filename suffix of tracked image assets.
	AssetSuffix = ".png"
	// ReferencePattern matches painterResource("<name>.png") and captures the quoted filename.
	ReferencePattern = `painterResource\("(.*?\.png)"\)`

	referenceCaptureGroupIndexConstant = 1
)

var referenceExpression = regexp.MustCompile(ReferencePattern)

// ExtractReferences returns the set of filenames referenced through painterResource calls.
// Matches do not span lines. Text without references yields an empty set.
func ExtractReferences(sourceText string) mapset.Set[string] {
	references := mapset.NewThreadUnsafeSet[string]()
	for _, match := range referenceExpression.FindAllStringSubmatch(sourceText, -1) {
		references.Add(match[referenceCaptureGroupIndexConstant])
	}
	return references
}
