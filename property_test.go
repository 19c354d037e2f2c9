package rope

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestRopeRandomizedProperty -count=1
//   - Fuzz test for this file:
//     go test . -run '^$' -fuzz FuzzRopeRandomizedProperty -fuzztime=10s

var alphabet = []string{"a", "b", "c", " ", "\n", "\r", "\r\n", "ä", "€", "xyz"}

func randomText(r *rand.Rand, maxlen int) string {
	n := r.Intn(maxlen + 1)
	var b strings.Builder
	for b.Len() < n {
		b.WriteString(alphabet[r.Intn(len(alphabet))])
	}
	return b.String()
}

func randomRange(r *rand.Rand, length int) (int, int) {
	start := r.Intn(length + 1)
	end := start + r.Intn(length-start+1)
	return start, end
}

func assertRopeMatchesModel(t *testing.T, rope Rope, model string) {
	t.Helper()
	if err := rope.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if rope.Len() != len(model) {
		t.Fatalf("length mismatch: got=%d want=%d", rope.Len(), len(model))
	}
	if rope.String() != model {
		t.Fatalf("text mismatch for rope of length %d", len(model))
	}
	if rope.NewlineCount() != countNewlines(model) {
		t.Fatalf("newline count mismatch: got=%d want=%d", rope.NewlineCount(), countNewlines(model))
	}
}

func runRandomRopeSequence(t *testing.T, seed uint64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(int64(seed)))
	rope := FromString(randomText(r, 5000))
	model := rope.String()
	versions := []Rope{rope}
	models := []string{model}

	for i := 0; i < steps; i++ {
		switch r.Intn(5) {
		case 0:
			start, end := randomRange(r, len(model))
			text := randomText(r, 3000)
			var err error
			rope, err = rope.Replace(start, end, text)
			if err != nil {
				t.Fatalf("Replace failed: %v", err)
			}
			model = model[:start] + text + model[end:]
		case 1:
			start, end := randomRange(r, len(model))
			var err error
			rope, err = rope.Slice(start, end)
			if err != nil {
				t.Fatalf("Slice failed: %v", err)
			}
			model = model[start:end]
		case 2:
			other := FromString(randomText(r, 4000))
			if r.Intn(2) == 0 {
				rope = rope.Concat(other)
				model = model + other.String()
			} else {
				rope = other.Concat(rope)
				model = other.String() + model
			}
		case 3:
			j := r.Intn(len(versions))
			if len(model)+len(models[j]) > 200000 {
				continue
			}
			rope = rope.Concat(versions[j])
			model = model + models[j]
		case 4:
			split := r.Intn(len(model) + 1)
			left, right, err := rope.Split(split)
			if err != nil {
				t.Fatalf("Split failed: %v", err)
			}
			rope = Concat(right, left)
			model = model[split:] + model[:split]
		}
		assertRopeMatchesModel(t, rope, model)
		versions = append(versions, rope)
		models = append(models, model)
	}
	for i, v := range versions {
		if v.String() != models[i] {
			t.Fatalf("version %d has been modified by later operations", i)
		}
	}
}

func TestRopeRandomizedProperty(t *testing.T) {
	seeds := []uint64{1, 2, 3, 7, 42, 99, 31337, 123456789}
	for _, seed := range seeds {
		t.Run("seed_"+strconv.FormatUint(seed, 10), func(t *testing.T) {
			runRandomRopeSequence(t, seed, 60)
		})
	}
}

func FuzzRopeRandomizedProperty(f *testing.F) {
	f.Add(uint64(1), uint8(32))
	f.Add(uint64(7), uint8(64))
	f.Add(uint64(42), uint8(96))
	f.Fuzz(func(t *testing.T, seed uint64, steps uint8) {
		runRandomRopeSequence(t, seed, int(steps%80)+1)
	})
}

func FuzzReplace(f *testing.F) {
	f.Add("hello world", 1, 9, "era")
	f.Add(strings.Repeat("ab\r\n", 700), 1000, 1500, "x\r")
	f.Fuzz(func(t *testing.T, s string, start, end int, text string) {
		rope := FromString(s)
		if rope.String() != s {
			t.Fatalf("rope does not reproduce input")
		}
		r2, err := rope.Replace(start, end, text)
		if start < 0 || end > len(s) || start > end {
			if err == nil {
				t.Fatalf("expected error for range [%d,%d) of %d bytes", start, end, len(s))
			}
			return
		}
		if err != nil {
			t.Fatal(err)
		}
		if r2.String() != s[:start]+text+s[end:] {
			t.Fatalf("replace result mismatch")
		}
		if err := r2.Check(); err != nil {
			t.Fatal(err)
		}
		if r2.NewlineCount() != countNewlines(r2.String()) {
			t.Fatalf("newline count mismatch: got=%d want=%d", r2.NewlineCount(), countNewlines(r2.String()))
		}
	})
}
