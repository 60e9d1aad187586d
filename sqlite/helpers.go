package sqlite

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/cookalong"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// encodeList marshals a string list as a JSON array. A nil list is stored as [].
func encodeList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeList unmarshals a JSON array produced by encodeList.
func decodeList(value, fieldName string) ([]string, error) {
	list := []string{}
	if err := json.Unmarshal([]byte(value), &list); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", fieldName, err)
	}
	return list, nil
}

// hashRecipe computes the xxHash of the recipe snapshot and returns a hex string.
// Instructions and ingredients are hashed as separately encoded lists, so
// moving an entry from one list to the other changes the hash.
func hashRecipe(instructions, ingredients string) string {
	d := xxhash.New()
	_, _ = d.WriteString(instructions)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(ingredients)
	return hex.EncodeToString(d.Sum(nil))
}

// recipeColumns encodes a recipe into its stored columns.
func recipeColumns(recipe cookalong.RecipeDetails) (instructions, ingredients, hash string, err error) {
	instructions, err = encodeList(recipe.Instructions)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to encode instructions: %w", err)
	}
	ingredients, err = encodeList(recipe.Ingredients)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to encode ingredients: %w", err)
	}
	return instructions, ingredients, hashRecipe(instructions, ingredients), nil
}
