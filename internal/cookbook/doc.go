// Package cookbook indexes a directory of recipe YAML files.
//
// A cookbook is just a flat directory; every .yaml/.yml file in it is
// parsed as a recipe. Unparseable files are skipped with a warning so a
// single bad document never hides the rest of the collection.
//
//	lib, err := cookbook.Load(dir)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, ok := lib.Get("shakshuka")
//
// The package also provides the data source for the TUI's suggestion
// chips: Suggest matches recipe tags and titles against a query prefix
// and ranks by how often a tag is used.
//
// "souschef init" seeds a new cookbook from a handful of embedded
// starter recipes; see WriteStarterRecipes.
package cookbook
