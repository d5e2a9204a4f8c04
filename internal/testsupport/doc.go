// Package testsupport builds throwaway configurations and feed fixtures for
// package tests.
package testsupport
