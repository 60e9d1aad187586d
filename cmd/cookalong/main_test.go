package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/fwojciec/cookalong"
	"github.com/fwojciec/cookalong/alexa"
	main "github.com/fwojciec/cookalong/cmd/cookalong"
	"github.com/fwojciec/cookalong/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPage = `<html><body><main>
<article><a rel="bookmark" href="/roasted-broccoli/"><h2>Roasted Broccoli</h2></a></article>
<article><a rel="bookmark" href="/broccoli-salad/"><h2>Broccoli Salad</h2></a></article>
<article><a rel="bookmark" href="/broccoli-soup/"><h2>Broccoli Soup</h2></a></article>
<article><a rel="bookmark" href="/broccoli-tots/"><h2>Broccoli Tots</h2></a></article>
</main></body></html>`

const recipePage = `<html><body>
<ul>
	<li class="ingredient">1 lb broccoli</li>
	<li class="ingredient">1 tbsp olive oil</li>
</ul>
<div class="instructions"><ol>
	<li>Preheat the oven to 425 degrees.</li>
	<li>Toss the broccoli with oil.</li>
	<li>Roast until golden.</li>
</ol></div>
</body></html>`

// siteFetcher serves the search page for search URLs and the recipe page
// for everything else.
func siteFetcher(fetched *[]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			if fetched != nil {
				*fetched = append(*fetched, url)
			}
			if strings.Contains(url, "?s=") {
				return searchPage, nil
			}
			return recipePage, nil
		},
	}
}

// invoke runs one invoke command and decodes the printed envelope.
func invoke(t *testing.T, m *main.Main, args ...string) alexa.ResponseEnvelope {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	require.NoError(t, err, stderr.String())

	var env alexa.ResponseEnvelope
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &env))
	return env
}

func TestMain_Run_Invoke(t *testing.T) {
	t.Parallel()

	t.Run("carries a cooking session across invocations", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		db := filepath.Join(dir, "cookalong.db")
		attrs := filepath.Join(dir, "attributes.json")
		var fetched []string

		newMain := func() *main.Main {
			m := main.NewMain()
			m.Fetcher = siteFetcher(&fetched)
			return m
		}
		run := func(args ...string) alexa.ResponseEnvelope {
			base := []string{"--db", db, "--fetch-rps", "0", "invoke", "--attributes", attrs, "user-1"}
			return invoke(t, newMain(), append(base, args...)...)
		}

		env := run("SearchForRecipe", "RecipeSearchString=broccoli")
		require.NotNil(t, env.Response.OutputSpeech)
		assert.Contains(t, env.Response.OutputSpeech.SSML, "Here are the top search results")
		assert.Contains(t, env.Response.OutputSpeech.SSML, "Recipe 3: Broccoli Soup.")
		assert.NotContains(t, env.Response.OutputSpeech.SSML, "Broccoli Tots")
		assert.Len(t, env.SessionAttributes.Results, 3)
		assert.Equal(t, "https://www.skinnytaste.com/?s=broccoli", fetched[0])

		env = run("PickRecipeNumber", "RecipeNumber=1")
		require.NotNil(t, env.Response.Card)
		assert.Equal(t, "Recipe Instructions for Roasted Broccoli", env.Response.Card.Title)
		assert.Contains(t, env.Response.Card.Text, "Step 3: Roast until golden.")
		assert.Contains(t, env.Response.OutputSpeech.SSML, "Step 1 of 3")
		assert.Equal(t, "https://www.skinnytaste.com/roasted-broccoli/", fetched[1])

		env = run("NextStep")
		assert.Contains(t, env.Response.OutputSpeech.SSML, "Step 2 of 3: Toss the broccoli with oil.")

		env = run("RepeatStep")
		assert.Contains(t, env.Response.OutputSpeech.SSML, "Step 2 of 3")

		env = run("NextStep")
		assert.Contains(t, env.Response.OutputSpeech.SSML, "This was the final step! Happy cooking!")

		env = run("PreviousStep")
		assert.Contains(t, env.Response.OutputSpeech.SSML, "Step 2 of 3")
	})

	t.Run("guides users without a recipe", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Fetcher = siteFetcher(nil)
		db := filepath.Join(t.TempDir(), "cookalong.db")

		env := invoke(t, m, "--db", db, "invoke", "user-2", "NextStep")

		assert.Contains(t, env.Response.OutputSpeech.SSML, "You haven't picked a recipe yet")
		assert.False(t, env.Response.ShouldEndSession)
	})

	t.Run("answers launch with the welcome", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Fetcher = siteFetcher(nil)
		db := filepath.Join(t.TempDir(), "cookalong.db")

		env := invoke(t, m, "--db", db, "invoke", "user-3", "launch")

		assert.Contains(t, env.Response.OutputSpeech.SSML, "Welcome to the Skinny Taste Alexa skill!")
		assert.True(t, env.SessionAttributes.NewSession)
	})

	t.Run("uses the redis store when configured", func(t *testing.T) {
		t.Parallel()

		mr := miniredis.RunT(t)
		dir := t.TempDir()
		attrs := filepath.Join(dir, "attributes.json")
		require.NoError(t, os.WriteFile(attrs, []byte(`{"recipe_results":[{"recipe_title":"Roasted Broccoli","recipe_url":"https://www.skinnytaste.com/roasted-broccoli/"}]}`), 0o644))

		m := main.NewMain()
		m.Fetcher = siteFetcher(nil)

		env := invoke(t, m, "--store", "redis", "--redis-addr", mr.Addr(), "invoke", "--attributes", attrs, "user-4", "PickRecipeNumber", "RecipeNumber=1")

		assert.Contains(t, env.Response.OutputSpeech.SSML, "Step 1 of 3")
		assert.True(t, mr.Exists("cookalong:session:user-4"))
	})

	t.Run("prints a failure envelope when a fetch fails", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "", cookalong.Errorf(cookalong.EINTERNAL, "HTTP 503")
			},
		}
		db := filepath.Join(t.TempDir(), "cookalong.db")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--db", db, "invoke", "user-5", "SearchForRecipe", "RecipeSearchString=kale"}, stdout, stderr)

		require.Error(t, err)
		var env alexa.ResponseEnvelope
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &env))
		assert.Contains(t, env.Response.OutputSpeech.SSML, "having trouble")
		assert.True(t, env.Response.ShouldEndSession)
	})

	t.Run("rejects malformed slots", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Fetcher = siteFetcher(nil)
		db := filepath.Join(t.TempDir(), "cookalong.db")

		err := m.Run(context.Background(), []string{"--db", db, "invoke", "user-6", "SearchForRecipe", "broccoli"}, &bytes.Buffer{}, &bytes.Buffer{})

		assert.Equal(t, cookalong.EINVALID, cookalong.ErrorCode(err))
	})
}

func TestMain_Run_Search(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.Fetcher = siteFetcher(nil)
	stdout := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"search", "broccoli"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "1. Roasted Broccoli  https://www.skinnytaste.com/roasted-broccoli/", lines[0])
	assert.Equal(t, "4. Broccoli Tots  https://www.skinnytaste.com/broccoli-tots/", lines[3])
}

func TestMain_Run_Extract(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.Fetcher = siteFetcher(nil)
	stdout := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"extract", "https://www.skinnytaste.com/roasted-broccoli/"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	output := stdout.String()
	assert.Contains(t, output, "Layout: labeled")
	assert.Contains(t, output, "Ingredients (2):")
	assert.Contains(t, output, "  - 1 lb broccoli")
	assert.Contains(t, output, "Instructions (3):")
	assert.Contains(t, output, "  3. Roast until golden.")
}

func TestMain_Run_InvokeEndDiscardsAttributes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	db := filepath.Join(dir, "cookalong.db")
	attrs := filepath.Join(dir, "attributes.json")

	m := main.NewMain()
	m.Fetcher = siteFetcher(nil)
	invoke(t, m, "--db", db, "invoke", "--attributes", attrs, "user-7", "launch")
	_, err := os.Stat(attrs)
	require.NoError(t, err)

	m = main.NewMain()
	m.Fetcher = siteFetcher(nil)
	stdout := &bytes.Buffer{}
	err = m.Run(context.Background(), []string{"--db", db, "invoke", "--attributes", attrs, "user-7", "end"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	_, err = os.Stat(attrs)
	assert.True(t, os.IsNotExist(err))
}
