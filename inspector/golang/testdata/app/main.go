//assembly:AssemblyTitle "Meta App"
//assembly:AssemblyCompany LoreSoft
package main

import (
	"fmt"

	"example.com/meta/app/version"
)

//assembly:AssemblyMetadata RepositoryUrl "https://github.com/example/meta"

func main() {
	fmt.Println(version.Value)
}
