package monitoring

import (
	"strings"
)

var receiverTrimmer = strings.NewReplacer("(*", "", "(", "", ")", "")

// getSegmentName turns a runtime function name into "package.receiver.method", dropping the
// import path and the pointer receiver markers.
func getSegmentName(fullFuncName string) string {
	name := fullFuncName
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return receiverTrimmer.Replace(name)
}
