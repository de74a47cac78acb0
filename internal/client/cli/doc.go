// Package cli implements the interactive VibeLook shell: a read-eval-print
// loop over the wardrobe, suggestion, saved-look, profile, and brand
// services. Command handlers prompt for their inputs, print their own
// results and errors, and keep the loop itself free of domain logic.
package cli
