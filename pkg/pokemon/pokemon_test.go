package pokemon

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func distinctLabels(n int) int {
	seen := make(map[Label]bool, n)
	for i := 0; i < n; i++ {
		seen[Encode(uuid.New())] = true
	}
	return len(seen)
}

func TestUniquenessLevel(t *testing.T) {
	if got := distinctLabels(1000); got < 970 {
		t.Errorf("1000 ids gave %d distinct labels, want >= 970", got)
	}
	if got := distinctLabels(100); got < 98 {
		t.Errorf("100 ids gave %d distinct labels, want >= 98", got)
	}
}

// Random ids collide about once in 2000 runs at this size, so the exact
// check runs on fixed ids.
func TestUniquenessFixedIDs(t *testing.T) {
	seen := make(map[Label]bool)
	for _, v := range vectors[:10] {
		seen[Encode(uuid.MustParse(v.id))] = true
	}
	if len(seen) != 10 {
		t.Errorf("10 ids gave %d distinct labels, want 10", len(seen))
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	for i := 0; i < 4; i++ {
		id := uuid.New()
		want := Encode(id)
		for j := 0; j < 500; j++ {
			if got := Encode(id); got != want {
				t.Fatalf("Encode(%s) = %v, then %v", id, want, got)
			}
		}
	}
}

// vectors are encodings fixed by the tables; the first ten labels are distinct.
var vectors = []struct {
	id   string
	adj  string
	name string
}{
	{"43654e77-0aa4-4551-b545-b0ec6f895f53", "Amusing", "furret"},
	{"ca5da036-8c9e-473d-9392-03be3e928a21", "Great", "mienshao"},
	{"ef822821-83ab-436b-83fc-44feb5d5bf78", "Sloppy", "pidgeotto"},
	{"d4bc783b-162e-4e5c-9230-d60f00823373", "Endless", "skarmory"},
	{"b1e980c2-8bd7-424f-b88a-cb73dfb94a1d", "Strict", "gothitelle"},
	{"eb0b8047-e61a-44ae-ba53-b0c53150b253", "Wonderful", "togetic"},
	{"86258d72-c02c-4bee-9a10-1f67f188a215", "Shining", "lugia"},
	{"5226e680-d5a0-46af-a5e3-f7c0423c4ca0", "Friendly", "wobbuffet"},
	{"74d38a4b-093d-4032-8ed1-6e7a90ec9584", "Hardworking", "magnemite"},
	{"5759b17c-5dc1-4972-b933-697d01cf6687", "Glowing", "qwilfish"},
	{"3190e6d1-4056-446c-ab73-4ea182c12773", "Slimy", "shedinja"},
	{"42a2eed8-5014-438a-a0d8-0cedea5ba7c9", "Deep", "serperior"},
	{"401f8355-3bda-4f86-bb60-0080ec7dd842", "Splendid", "simisage"},
	{"9d121736-c474-465b-8312-c684a4f88317", "Starving", "sawsbuck"},
	{"617da971-d9ff-47a6-95d5-316a14bc573c", "Beautiful", "mr-mime"},
	{"3a4f7d8c-2b91-4d2f-ba81-3978e24a3d6d", "Polite", "pidgey"},
	{"7dd21060-a5f7-4413-af57-1b2035bd3a6b", "Huge", "dedenne"},
	{"4bb6ac20-a1e9-4672-8dec-5fc3b950100b", "Cranky", "floette-eternal"},
	{"5061ffa6-74ce-49f7-ac54-c91ef20502f2", "Stinky", "tyrogue"},
	{"549cbf29-8286-495d-a265-542fe392144e", "Truthful", "hypno"},
	{"30d25cca-2985-4ddb-b65c-6a08fd79edbd", "Truthful", "ralts"},
	{"296aa001-cfb2-48b1-90fe-1ac608f53c33", "Dreadful", "mismagius"},
	{"d52f9bac-2220-4d78-a4fc-3db594061e70", "Loyal", "ninetales"},
	{"980be4e6-4b61-4a51-aefb-c0d2606447d6", "Vast", "pawniard"},
	{"51e83cf5-99ca-4bf1-96ec-b42f4d865520", "Happy", "manectric-mega"},
	{"9edfdc07-897e-4edb-af2e-f08efe2b9465", "Smelly", "jellicent"},
	{"1b51f9c7-2371-43cf-8fa8-500e4813eaf5", "Wonderful", "ampharos-mega"},
	{"3bafc1b5-9f37-4784-9d55-5909536cb645", "Fussy", "exeggutor"},
	{"bf938f7e-3221-4670-8b28-6a4bd67bd7bc", "Cheerful", "jumpluff"},
	{"f8c8dfb7-5ae1-449d-823c-204042a2f920", "Amusing", "kyurem-black"},
	{"637073ea-1cda-42c1-98da-eed21893e528", "Busy", "electivire"},
	{"6c3d2b3a-40e5-4761-81a0-ea608f751001", "Truthful", "mantyke"},
	{"a12d98cf-8d7e-465a-8639-fc1234f574a9", "Beautiful", "arceus"},
	{"a598e868-a1ce-4a5c-9c88-59236066f978", "Tough", "poliwrath"},
	{"90dcdb4e-af67-4022-9c50-9e05ac6a72d1", "Stiff", "nidorino"},
	{"c106d5c5-b843-4770-9ae6-c689df40bff4", "Loyal", "kirlia"},
	{"1744b076-e520-4517-8ab0-b23f1c7c4075", "Fussy", "greninja"},
	{"4c1d404f-3748-4746-b3c7-67e0c501bc9d", "Adorable", "swampert-mega"},
	{"b65e711f-f959-462e-86bd-ceb39b0a262e", "Truthful", "beheeyem"},
	{"3deee69d-6936-4b63-af5f-d6f4ad29c62a", "Sloppy", "kakuna"},
	{"c9bb99f0-b0be-4975-866f-a9e9e8973140", "Spiky", "regigigas"},
	{"318bfcfb-30de-4897-bdfe-5cbcb5f8499d", "Hard", "honchkrow"},
	{"51370cfb-8de7-433a-8202-0f6061a48f8b", "Dull", "oddish"},
	{"7833b278-558f-4c76-9332-d39f51395d68", "Beautiful", "hydreigon"},
	{"53e2ae10-009f-4626-8fa8-650b6fc7a577", "Clumsy", "absol-mega"},
	{"0d8c6ca3-88af-45f8-8c6c-d184a9fb4909", "Sizzling", "bergmite"},
	{"58e7e1c4-2e94-4e49-82af-0f270d56b347", "Deep", "azurill"},
	{"7537fc2a-f998-4efa-8f35-8011a9c0f808", "Cranky", "gurdurr"},
	{"9f53d9bf-50a7-4a95-9130-fce9cc478ed3", "Foul", "corphish"},
	{"4aa8e0a4-184a-448c-9f49-2474e251c85a", "Crazy", "shroomish"},
}

func TestEncode(t *testing.T) {
	for _, tt := range vectors {
		t.Run(tt.id, func(t *testing.T) {
			got := Encode(uuid.MustParse(tt.id))
			if want := FromPair(tt.adj, tt.name); got != want {
				t.Errorf("Encode(%s) = %q, want %q", tt.id, got, want)
			}
		})
	}
}

func TestEncodeNil(t *testing.T) {
	got := Encode(uuid.Nil)
	if got != FromPair("Busy", "bulbasaur") {
		t.Errorf("Encode(nil) = %q, want %q", got, "Busy bulbasaur")
	}
	if s := got.String(); s != "Busy bulbasaur" {
		t.Errorf("String() = %q, want %q", s, "Busy bulbasaur")
	}
}

func TestEncodeString(t *testing.T) {
	l, err := EncodeString("ca5da036-8c9e-473d-9392-03be3e928a21")
	if err != nil {
		t.Fatalf("EncodeString: %v", err)
	}
	if !l.EqualString("Great mienshao") {
		t.Errorf("EncodeString = %q, want %q", l, "Great mienshao")
	}

	for _, s := range []string{"", "not-a-uuid", "ca5da036-8c9e-473d-9392-03be3e928a2"} {
		if _, err := EncodeString(s); !errors.Is(err, ErrInvalidID) {
			t.Errorf("EncodeString(%q) error = %v, want ErrInvalidID", s, err)
		}
	}
}

func TestDeriveIndexRange(t *testing.T) {
	var zero, full [16]byte
	for i := range full {
		full[i] = 0xff
	}
	for _, id := range [][16]byte{zero, full} {
		for _, offset := range []int{adjectiveOffset, pokemonOffset} {
			for _, n := range []int{1, 7, len(adjectives), len(pokemons), 260101} {
				got := deriveIndex(id, offset, n)
				if got < 0 || got >= n {
					t.Errorf("deriveIndex(%x, %d, %d) = %d, out of range", id, offset, n, got)
				}
			}
		}
	}
	if got := deriveIndex(full, 0, 260101); got != 4*255*255 {
		t.Errorf("deriveIndex(ff..., 0, 260101) = %d, want %d", got, 4*255*255)
	}
	l := Encode(uuid.UUID(full))
	if _, _, ok := l.Indices(); !ok {
		t.Errorf("Encode(ff...) = %q, not in tables", l)
	}
}

func TestDeriveIndexWindows(t *testing.T) {
	var id [16]byte
	// bytes [0..4) pair with [4..8): 1*5 + 2*6 + 3*7 + 4*8 = 70
	copy(id[:], []byte{1, 2, 3, 4, 5, 6, 7, 8, 0, 0, 0, 0, 0, 0, 0, 9})
	if got := deriveIndex(id, 0, 1000); got != 70 {
		t.Errorf("deriveIndex(offset 0) = %d, want 70", got)
	}
	if got := deriveIndex(id, 8, 1000); got != 0 {
		t.Errorf("deriveIndex(offset 8) = %d, want 0", got)
	}
	if got := deriveIndex(id, 0, 30); got != 10 {
		t.Errorf("deriveIndex(offset 0, n 30) = %d, want 10", got)
	}
}

func TestFromUUIDMatchesEncodeString(t *testing.T) {
	for i := 0; i < 50; i++ {
		id := uuid.New()
		got, err := EncodeString(id.String())
		if err != nil {
			t.Fatalf("EncodeString(%s): %v", id, err)
		}
		if got != Encode(id) {
			t.Errorf("EncodeString(%s) = %q, Encode = %q", id, got, Encode(id))
		}
	}
}

func TestFailEqualString(t *testing.T) {
	l := Encode(uuid.Nil)
	items := [][2]string{
		{"Busy", "bulbasau"},
		{"Busy", "bulbasaua"},
		{"busy", "bulbasaur"},
	}
	for _, it := range items {
		other := FromPair(it[0], it[1])
		if l == other || l.Equal(other) || other.Equal(l) {
			t.Errorf("%q equals %q", l, other)
		}
		s := it[0] + " " + it[1]
		if l.EqualString(s) || EqualString(s, l) {
			t.Errorf("%q equals string %q", l, s)
		}
	}

	for _, s := range []string{"", "Busy", "Busy ", " bulbasaur", "Busy  bulbasaur", "Busy bulbasaur ", " Busy bulbasaur", "Busy_bulbasaur", "BUSY BULBASAUR"} {
		if l.EqualString(s) {
			t.Errorf("%q equals string %q", l, s)
		}
	}
}

func TestEqualString(t *testing.T) {
	for i := 0; i < 100; i++ {
		l := Encode(uuid.New())
		s := l.String()
		if !l.EqualString(s) || !EqualString(s, l) {
			t.Errorf("%q does not equal its own rendering", l)
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	for i := 0; i < 200; i++ {
		l := Encode(uuid.New())
		got, err := Decode(l.String())
		if err != nil {
			t.Fatalf("Decode(%q): %v", l, err)
		}
		if got != l {
			t.Errorf("Decode(%q) = %q", l, got)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		text string
		ok   bool
	}{
		{"Busy bulbasaur", true},
		{"Cranky floette-eternal", true},
		{"Beautiful mr-mime", true},
		{"Stiff charizard-mega-x", true},
		{"busy bulbasaur", false},
		{"Busy Bulbasaur", false},
		{"Busy", false},
		{"Busy ", false},
		{"Busy  bulbasaur", false},
		{"Busy bulbasaur ", false},
		{"Busy missingno", false},
		{"Unknown bulbasaur", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Decode(tt.text)
			if tt.ok {
				if err != nil {
					t.Fatalf("Decode(%q): %v", tt.text, err)
				}
				if got.String() != tt.text {
					t.Errorf("Decode(%q) = %q", tt.text, got)
				}
				return
			}
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Decode(%q) error = %v, want ErrNotFound", tt.text, err)
			}
			if !got.IsZero() {
				t.Errorf("Decode(%q) = %q on error, want zero Label", tt.text, got)
			}
		})
	}
}

func TestIndices(t *testing.T) {
	adj, name, ok := Encode(uuid.Nil).Indices()
	if !ok || adj != 0 || name != 0 {
		t.Errorf("Indices() = %d, %d, %v, want 0, 0, true", adj, name, ok)
	}
	if _, _, ok := FromPair("Busy", "agumon").Indices(); ok {
		t.Error("Indices() ok for a pair outside the tables")
	}
}

func TestTables(t *testing.T) {
	if len(adjectives) != 140 {
		t.Errorf("len(adjectives) = %d, want 140", len(adjectives))
	}
	if len(pokemons) != 811 {
		t.Errorf("len(pokemons) = %d, want 811", len(pokemons))
	}

	// Decode splits at the first space, so no entry may contain whitespace.
	for name, table := range map[string][]string{"adjectives": Adjectives(), "pokemons": Pokemons()} {
		seen := make(map[string]bool, len(table))
		for i, s := range table {
			if s == "" || strings.ContainsAny(s, " \t\n") {
				t.Errorf("%s[%d] = %q, want a single non-empty token", name, i, s)
			}
			if seen[s] {
				t.Errorf("%s[%d] = %q is duplicated", name, i, s)
			}
			seen[s] = true
		}
	}

	// Callers get copies.
	a := Adjectives()
	a[0] = "Changed"
	if adjectives[0] != "Busy" {
		t.Error("Adjectives() exposed the table")
	}
}

func TestTextMarshaling(t *testing.T) {
	type record struct {
		ID    uuid.UUID `json:"uuid"`
		Label Label     `json:"label"`
	}
	id := uuid.MustParse("43654e77-0aa4-4551-b545-b0ec6f895f53")
	data, err := json.Marshal(record{ID: id, Label: Encode(id)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"uuid":"43654e77-0aa4-4551-b545-b0ec6f895f53","label":"Amusing furret"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var back record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Label != Encode(id) {
		t.Errorf("Unmarshal label = %q, want %q", back.Label, Encode(id))
	}

	if err := json.Unmarshal([]byte(`{"label":"Amusing agumon"}`), &back); !errors.Is(err, ErrNotFound) {
		t.Errorf("Unmarshal unknown label error = %v, want ErrNotFound", err)
	}
}

func TestConcurrentEncode(t *testing.T) {
	id := uuid.MustParse("ca5da036-8c9e-473d-9392-03be3e928a21")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l := Encode(id)
				if !l.EqualString("Great mienshao") {
					t.Errorf("Encode = %q", l)
					return
				}
				if _, err := Decode(l.String()); err != nil {
					t.Errorf("Decode: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkWrite(b *testing.B) {
	id := uuid.New()
	for i := 0; i < b.N; i++ {
		var sb strings.Builder
		for j := 0; j < 100; j++ {
			sb.WriteString(Encode(id).String())
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	s := Encode(uuid.New()).String()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(s); err != nil {
			b.Fatal(err)
		}
	}
}
