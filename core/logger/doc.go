// Package logger is a standardized event logging framework for the
// interpreter.
package logger
