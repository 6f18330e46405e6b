package content

import "testing"

func TestSectionType_IsValid(t *testing.T) {
	valid := []SectionType{
		SectionTypeHero, SectionTypeFeatures, SectionTypeMedia, SectionTypePricing,
		SectionTypeFAQ, SectionTypeForm, SectionTypeHTML, SectionTypeTestimonials,
		SectionTypeCTA, SectionTypeCustom,
	}
	for _, st := range valid {
		if !st.IsValid() {
			t.Errorf("IsValid(%q) = false, want true", st)
		}
	}

	for _, st := range []SectionType{"", "banner", "HERO"} {
		if st.IsValid() {
			t.Errorf("IsValid(%q) = true, want false", st)
		}
	}
}

func TestNewPageSection(t *testing.T) {
	section, err := NewPageSection(1, SectionTypeHero, "Welcome", SectionContent{Hero: &Hero{Headline: "Hi"}})
	if err != nil {
		t.Fatalf("NewPageSection() error = %v, want nil", err)
	}
	if !section.IsVisible() {
		t.Error("IsVisible() = false, want true for new section")
	}
	if section.SID() == "" {
		t.Error("SID() is empty, want generated sid")
	}

	if _, err := NewPageSection(0, SectionTypeHero, "", SectionContent{}); err == nil {
		t.Error("NewPageSection() with zero page ID error = nil, want error")
	}
	if _, err := NewPageSection(1, SectionType("banner"), "", SectionContent{}); err == nil {
		t.Error("NewPageSection() with invalid type error = nil, want error")
	}
}

func TestPageSection_HasPayload(t *testing.T) {
	tests := []struct {
		name        string
		sectionType SectionType
		content     SectionContent
		want        bool
	}{
		{"hero with payload", SectionTypeHero, SectionContent{Hero: &Hero{Headline: "Hi"}}, true},
		{"hero missing payload", SectionTypeHero, SectionContent{}, false},
		{"hero with wrong payload", SectionTypeHero, SectionContent{HTML: &HTMLBlock{Content: "<p>x</p>"}}, false},
		{"features with payload", SectionTypeFeatures, SectionContent{Features: &FeatureGroup{Heading: "Why"}}, true},
		{"media with payload", SectionTypeMedia, SectionContent{Media: &Media{Kind: MediaKindImage, URL: "/a.png"}}, true},
		{"faq with payload", SectionTypeFAQ, SectionContent{FAQ: &FAQBlock{}}, true},
		{"html missing payload", SectionTypeHTML, SectionContent{}, false},
		{"pricing with reference", SectionTypePricing, SectionContent{PricingSectionID: 3}, true},
		{"pricing without reference", SectionTypePricing, SectionContent{}, false},
		{"form with reference", SectionTypeForm, SectionContent{FormID: 7}, true},
		{"form without reference", SectionTypeForm, SectionContent{}, false},
		{"cta needs no payload", SectionTypeCTA, SectionContent{}, true},
		{"custom needs no payload", SectionTypeCustom, SectionContent{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section, err := NewPageSection(1, tt.sectionType, "t", tt.content)
			if err != nil {
				t.Fatalf("NewPageSection() error = %v", err)
			}
			if got := section.HasPayload(); got != tt.want {
				t.Errorf("HasPayload() = %v, want %v", got, tt.want)
			}
		})
	}
}
