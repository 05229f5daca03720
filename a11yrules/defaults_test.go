package a11yrules

import (
	"testing"

	"github.com/sirkon/a11ycheck/element"
)

func findTest(t *testing.T, r *Registry, key string) Test {
	t.Helper()

	for _, rules := range r.tags {
		for _, kr := range rules {
			if kr.Key == key {
				return kr.Rule.Test
			}
		}
	}
	for _, rules := range r.props {
		for _, kr := range rules {
			if kr.Key == key {
				return kr.Rule.Test
			}
		}
	}
	t.Fatalf("no rule %s", key)
	return nil
}

func TestDefaultRules(t *testing.T) {
	r := Default()
	click := func() {}

	tests := []struct {
		name  string
		key   string
		tag   string
		props *element.Props
		pass  bool
	}{
		{
			name:  "image without alt",
			key:   NoAlt,
			tag:   "img",
			props: element.NewProps().Set("src", "a.png"),
			pass:  false,
		},
		{
			name:  "decorative image",
			key:   NoAlt,
			tag:   "img",
			props: element.NewProps().Set("alt", ""),
			pass:  true,
		},
		{
			name:  "presentation image",
			key:   NoAlt,
			tag:   "img",
			props: element.NewProps().Set("role", "presentation"),
			pass:  true,
		},
		{
			name:  "redundant alt",
			key:   RedundantAlt,
			tag:   "img",
			props: element.NewProps().Set("alt", "Picture of the team"),
			pass:  false,
		},
		{
			name:  "descriptive alt",
			key:   RedundantAlt,
			tag:   "img",
			props: element.NewProps().Set("alt", "The team at the offsite"),
			pass:  true,
		},
		{
			name:  "hash anchor with handler",
			key:   HashHrefNeedsButton,
			tag:   "a",
			props: element.NewProps().Set("href", "#").Set("onClick", click),
			pass:  false,
		},
		{
			name:  "hash anchor without handler",
			key:   HashHrefNeedsButton,
			tag:   "a",
			props: element.NewProps().Set("href", "#"),
			pass:  true,
		},
		{
			name:  "clickable div without role",
			key:   NoRole,
			tag:   "div",
			props: element.NewProps().Set("onClick", click),
			pass:  false,
		},
		{
			name:  "clickable button",
			key:   NoRole,
			tag:   "button",
			props: element.NewProps().Set("onClick", click),
			pass:  true,
		},
		{
			name:  "clickable anchor without href",
			key:   NoTabIndex,
			tag:   "a",
			props: element.NewProps().Set("onClick", click),
			pass:  false,
		},
		{
			name:  "clickable div with tab index",
			key:   NoTabIndex,
			tag:   "div",
			props: element.NewProps().Set("onClick", click).Set("tabIndex", 0),
			pass:  true,
		},
		{
			name:  "fake button without key handler",
			key:   ButtonRoleSpace,
			tag:   "span",
			props: element.NewProps().Set("onClick", click).Set("role", "button"),
			pass:  false,
		},
		{
			name:  "fake button with key up",
			key:   ButtonRoleSpace,
			tag:   "span",
			props: element.NewProps().Set("onClick", click).Set("role", "button").Set("onKeyUp", click),
			pass:  true,
		},
		{
			name:  "fake button with key up only",
			key:   ButtonRoleEnter,
			tag:   "span",
			props: element.NewProps().Set("onClick", click).Set("role", "button").Set("onKeyUp", click),
			pass:  false,
		},
		{
			name:  "fake button with key press",
			key:   ButtonRoleEnter,
			tag:   "span",
			props: element.NewProps().Set("onClick", click).Set("role", "button").Set("onKeyPress", click),
			pass:  true,
		},
		{
			name:  "hidden button",
			key:   FocusableAriaHidden,
			tag:   "button",
			props: element.NewProps().Set("aria-hidden", true),
			pass:  false,
		},
		{
			name:  "hidden button out of tab order",
			key:   FocusableAriaHidden,
			tag:   "button",
			props: element.NewProps().Set("aria-hidden", "true").Set("tabIndex", "-1"),
			pass:  true,
		},
		{
			name:  "hidden focusable div",
			key:   FocusableAriaHidden,
			tag:   "div",
			props: element.NewProps().Set("aria-hidden", "TRUE").Set("tabIndex", "0"),
			pass:  false,
		},
		{
			name:  "aria hidden false",
			key:   FocusableAriaHidden,
			tag:   "button",
			props: element.NewProps().Set("aria-hidden", "false"),
			pass:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test := findTest(t, r, tt.key)
			if got := test(tt.tag, tt.props, nil); got != tt.pass {
				t.Errorf("%s on <%s>: want pass=%v got %v", tt.key, tt.tag, tt.pass, got)
			}
		})
	}
}

func TestDefaultMobileExclusions(t *testing.T) {
	got := Default().MobileExclusions()
	want := []string{NoTabIndex, ButtonRoleSpace, ButtonRoleEnter}
	if len(got) != len(want) {
		t.Fatalf("want %v got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v got %v", want, got)
		}
	}
}
