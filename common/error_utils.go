package common

import (
	"fmt"
	"os"
	"runtime/debug"
)

func PanicIfError(config *CommonConfig, err error) {
	if err != nil {
		panic(err)
	}
}

// HandleUnexpectedPanic is deferred in main. It turns any panic into an
// error message plus stack trace on stdout and a non-zero exit.
func HandleUnexpectedPanic(config *CommonConfig) {
	if r := recover(); r != nil {
		fmt.Println("Unexpected error:", r)
		fmt.Println(string(debug.Stack()))
		os.Exit(1)
	}
}
