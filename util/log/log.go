//go:build !release

package log

import (
	"fmt"
	"log"
	"os"
)

// debugPrefix marks debug lines in development builds.
const debugPrefix = "[DEBUG] "

// Print calls the standard log.Print()
func Print(v ...interface{}) {
	log.Output(2, fmt.Sprint(v...))
}

// Printf calls the standard log.Printf()
func Printf(format string, v ...interface{}) {
	log.Output(2, fmt.Sprintf(format, v...))
}

// Println calls the standard log.Println()
func Println(v ...interface{}) {
	log.Output(2, fmt.Sprintln(v...))
}

// Fatal calls the standard log.Fatal()
func Fatal(v ...interface{}) {
	log.Output(2, fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf calls the standard log.Fatalf()
func Fatalf(format string, v ...interface{}) {
	log.Output(2, fmt.Sprintf(format, v...))
	os.Exit(1)
}

// Fatalln calls the standard log.Fatalln()
func Fatalln(v ...interface{}) {
	log.Output(2, fmt.Sprintln(v...))
	os.Exit(1)
}

// Debug logs with a [DEBUG] prefix. Compiled out of release builds.
func Debug(v ...interface{}) {
	log.Output(2, debugPrefix+fmt.Sprint(v...))
}

// Debugf logs with a [DEBUG] prefix. Compiled out of release builds.
func Debugf(format string, v ...interface{}) {
	log.Output(2, debugPrefix+fmt.Sprintf(format, v...))
}
