package normalize_test

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/normalize"
)

func TestNormalizeItem_Precedence(t *testing.T) {
	tests := []struct {
		name string
		in   document.Item
		want document.Item
	}{
		{
			name: "full name from parts",
			in:   document.Item{FirstName: " Ada ", LastName: "Lovelace"},
			want: document.Item{FullName: "Ada Lovelace", FirstName: "Ada", LastName: "Lovelace", Description: document.Description{}},
		},
		{
			name: "parts from full name",
			in:   document.Item{FullName: "Grace  Brewster Hopper"},
			want: document.Item{FullName: "Grace Brewster Hopper", FirstName: "Grace", LastName: "Brewster Hopper", Description: document.Description{}},
		},
		{
			name: "position wins over title",
			in:   document.Item{Position: "Engineer", Title: "Developer", Subtitle: "Acme"},
			want: document.Item{
				Position: "Engineer", Title: "Engineer", Name: "Engineer",
				Company: "Acme", Subtitle: "Acme",
				Description: document.Description{},
			},
		},
		{
			name: "title fills position",
			in:   document.Item{Title: "BSc", Company: "MIT", Name: "Physics"},
			want: document.Item{
				Position: "BSc", Title: "BSc", Name: "Physics",
				Company: "MIT", Subtitle: "MIT",
				Description: document.Description{},
			},
		},
		{
			name: "date from range",
			in:   document.Item{StartDate: "2019", EndDate: "2021"},
			want: document.Item{StartDate: "2019", EndDate: "2021", Date: "2019 - 2021", Description: document.Description{}},
		},
		{
			name: "open range",
			in:   document.Item{StartDate: "2022"},
			want: document.Item{StartDate: "2022", Date: "2022 - Present", Description: document.Description{}},
		},
		{
			name: "explicit date wins",
			in:   document.Item{Date: "Spring 2020", StartDate: "2020"},
			want: document.Item{Date: "Spring 2020", StartDate: "2020", Description: document.Description{}},
		},
		{
			name: "description cleanup",
			in:   document.Item{Description: document.Description{" Built X ", "", "  ", "Shipped Y"}},
			want: document.Item{Description: document.Description{"Built X", "Shipped Y"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := normalize.NormalizeItem(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("normalized item mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize_DefaultsSectionsAndIDs(t *testing.T) {
	doc := document.Document{
		Sections: []document.Section{
			{Type: "skills", Items: []document.Item{{Name: "Go"}, {Name: "SQL"}}},
			{ID: "x", Type: "nonsense"},
		},
	}

	got := normalize.Normalize(doc)

	first := got.Sections[0]
	if first.ID != "skills-0" || first.Title != "Skills" {
		t.Fatalf("unexpected section defaults: %+v", first)
	}
	if first.Items[0].ID != "skills-0-item-0" || first.Items[1].ID != "skills-0-item-1" {
		t.Fatalf("unexpected item ids: %s %s", first.Items[0].ID, first.Items[1].ID)
	}
	second := got.Sections[1]
	if second.Type != document.SectionCustom || second.Items == nil {
		t.Fatalf("unexpected second section: %+v", second)
	}
	if doc.Sections[0].ID != "" {
		t.Fatalf("input mutated")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 200; i++ {
		doc := randomDocument(rng)
		once := normalize.Normalize(doc)
		twice := normalize.Normalize(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Fatalf("normalize not idempotent for case %d (-once +twice):\n%s", i, diff)
		}
	}
}

func TestNormalize_SynonymConsistency(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 200; i++ {
		doc := normalize.Normalize(randomDocument(rng))
		for _, section := range doc.Sections {
			for _, item := range section.Items {
				if item.Position != item.Title {
					t.Fatalf("position %q != title %q", item.Position, item.Title)
				}
				if item.Company != item.Subtitle {
					t.Fatalf("company %q != subtitle %q", item.Company, item.Subtitle)
				}
				if item.Description == nil {
					t.Fatalf("description must never be nil")
				}
				if item.ID == "" {
					t.Fatalf("item id must be assigned")
				}
			}
		}
	}
}

func FuzzNormalizeItem(f *testing.F) {
	f.Add("Engineer", "", "Acme", "", " Ada", "", "2020", "")
	f.Add("", "Dev", "", "Initech", "", "Lovelace", "", "2021")
	f.Add("  ", "\t", "", "", "", "", "", "")

	f.Fuzz(func(t *testing.T, position, title, company, subtitle, first, last, start, end string) {
		item := document.Item{
			Position: position, Title: title,
			Company: company, Subtitle: subtitle,
			FirstName: first, LastName: last,
			StartDate: start, EndDate: end,
		}
		once := normalize.NormalizeItem(item)
		twice := normalize.NormalizeItem(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Fatalf("not idempotent (-once +twice):\n%s", diff)
		}
		if once.Position != once.Title || once.Company != once.Subtitle {
			t.Fatalf("synonyms disagree: %+v", once)
		}
	})
}

var fragments = []string{"", " ", "Acme", " Engineer ", "Ada", "Lovelace", "2020", "Go", "Berlin", "  Built X  "}

func pick(rng *rand.Rand) string {
	return fragments[rng.IntN(len(fragments))]
}

func randomDocument(rng *rand.Rand) document.Document {
	types := append(document.SectionTypes(), "legacy", "")
	doc := document.Document{
		ID:         pick(rng),
		TemplateID: pick(rng),
		Metadata: document.Metadata{
			FontFamily:  pick(rng),
			AccentColor: pick(rng),
			Density:     pick(rng),
			LineHeight:  float64(rng.IntN(4)) - 1,
		},
	}
	sectionCount := rng.IntN(5)
	for s := 0; s < sectionCount; s++ {
		section := document.Section{
			ID:        pick(rng),
			Type:      types[rng.IntN(len(types))],
			Title:     pick(rng),
			IsVisible: rng.IntN(2) == 0,
			Columns:   rng.IntN(4) - 1,
		}
		itemCount := rng.IntN(4)
		for n := 0; n < itemCount; n++ {
			item := document.Item{
				ID:        pick(rng),
				FullName:  pick(rng),
				FirstName: pick(rng),
				LastName:  pick(rng),
				Title:     pick(rng),
				Position:  pick(rng),
				Company:   pick(rng),
				Subtitle:  pick(rng),
				StartDate: pick(rng),
				EndDate:   pick(rng),
				Name:      pick(rng),
			}
			if rng.IntN(2) == 0 {
				item.Description = document.Description{pick(rng), pick(rng)}
			}
			section.Items = append(section.Items, item)
		}
		doc.Sections = append(doc.Sections, section)
	}
	return doc
}
