package convention

import "testing"

func TestPluralize(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"user", "users"},
		{"box", "boxes"},
		{"bus", "buses"},
		{"match", "matches"},
		{"dish", "dishes"},
		{"city", "cities"},
		{"day", "days"},
		{"leaf", "leaves"},
		{"knife", "knives"},
		{"person", "people"},
		{"Person", "People"},
		{"status", "statuses"},
		{"schema", "schemas"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := Pluralize(tt.word); got != tt.want {
				t.Errorf("Pluralize(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestSingularize(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"users", "user"},
		{"boxes", "box"},
		{"cities", "city"},
		{"leaves", "leaf"},
		{"people", "person"},
		{"glass", "glass"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := Singularize(tt.word); got != tt.want {
				t.Errorf("Singularize(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestSnake(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"User", "user"},
		{"BlogPost", "blog_post"},
		{"already_snake", "already_snake"},
		{"HTTPServer", "h_t_t_p_server"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Snake(tt.name); got != tt.want {
				t.Errorf("Snake(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestTableName(t *testing.T) {
	tests := []struct {
		record string
		want   string
	}{
		{"user", "users"},
		{"BlogPost", "blog_posts"},
		{"Person", "people"},
	}

	for _, tt := range tests {
		t.Run(tt.record, func(t *testing.T) {
			if got := TableName(tt.record); got != tt.want {
				t.Errorf("TableName(%q) = %q, want %q", tt.record, got, tt.want)
			}
		})
	}
}

func TestForeignKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"User", "user_id"},
		{"users", "user_id"},
		{"BlogPost", "blog_post_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForeignKey(tt.name); got != tt.want {
				t.Errorf("ForeignKey(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
