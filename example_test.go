package appgen_test

import (
	"fmt"
	"log"

	"github.com/bundlebench/appgen"
)

// ExampleBuild generates a four-module fixture into a temporary directory and
// reports the tree size. One container plus three leaves: the module budget
// is met exactly.
func ExampleBuild() {
	app, err := appgen.Build(appgen.Config{ModuleCount: 4, Flatness: 5})
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	fmt.Println(len(app.Modules()))
	// Output: 4
}
