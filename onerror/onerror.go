package onerror

import (
	"log"
	"os"
)

func init() {
	log.SetFlags(0)
}

func Log(err error) {
	Logf("", err)
}

func Logf(msg string, err error) {
	if err != nil {
		log.Fatalf("%s%s", msg, err)
	}
}

// Exit terminates with status code without printing anything.
func Exit(code int) {
	os.Exit(code)
}
