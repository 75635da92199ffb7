package urls

// Documentation URLs for guides and troubleshooting
// All URLs point to the documentation site at https://mtreloar.github.io/souschef/

// GettingStarted is the quick start guide for new users:
// installing starter recipes and cooking for the first time.
const GettingStarted = "https://mtreloar.github.io/souschef/getting-started/"

// RecipeFormat documents the recipe YAML format, including
// ingredients, step durations, and tags.
const RecipeFormat = "https://mtreloar.github.io/souschef/recipes/format/"

// CompanionSetup explains how to run souschef-server and connect
// phones and tablets to a shared cooking session.
const CompanionSetup = "https://mtreloar.github.io/souschef/companions/setup/"

// TroubleshootingGuide provides solutions to common issues with
// discovery, companion connections, and the terminal UI.
const TroubleshootingGuide = "https://mtreloar.github.io/souschef/troubleshooting/"
