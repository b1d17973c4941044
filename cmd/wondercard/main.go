package main

import (
	"github.com/ssargent/wondercard/cmd/wondercard/cmd"
	"github.com/ssargent/wondercard/pkg/di"
)

func main() {
	// Initialize dependency injection container
	container := di.NewContainer()

	// Inject dependencies into cmd package
	cmd.SetContainer(container)

	cmd.Execute()
}
