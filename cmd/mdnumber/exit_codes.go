package main

// Exit codes for mdnumber. Every failure, including usage errors and
// missing files, exits with ExitFailure.
const (
	ExitSuccess = 0
	ExitFailure = 1
)
