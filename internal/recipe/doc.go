// Package recipe defines the recipe data model and its YAML codec.
//
// Recipes are plain YAML documents:
//
//	title: Shakshuka
//	tags: [breakfast, vegetarian]
//	servings: 2
//	ingredients:
//	  - {name: eggs, quantity: 4}
//	  - {name: crushed tomatoes, quantity: 400, unit: g}
//	steps:
//	  - text: Soften the onion in olive oil over medium heat.
//	    duration: 5m
//	  - text: Add tomatoes and simmer until thickened.
//	    duration: 10m
//	  - text: Crack in the eggs, cover, and cook until just set.
//	    duration: 6m
//
// The recipe ID defaults to the filename stem (shakshuka.yaml -> "shakshuka")
// unless the document sets one explicitly.
//
// Step durations are optional hints for the cooking-mode timer; they use
// Go duration syntax ("90s", "10m", "1h30m").
//
// The step navigator in the session package indexes Steps but never
// interprets their fields; everything here is presentation data.
package recipe
