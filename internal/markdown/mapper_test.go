package markdown

import (
	"golang.org/x/net/html/atom"
	"testing"
)

func TestMapHeaderLevelClamp(t *testing.T) {
	n := &Node{Type: NodeHeader, Meta: NodeMeta{HeaderLevel: 9}}
	el := Map(n)
	if el.DataAtom != atom.H6 {
		t.Fatalf("level 9 should clamp to h6, got %v", el.DataAtom)
	}

	n = &Node{Type: NodeHeader, Meta: NodeMeta{HeaderLevel: 0}}
	el = Map(n)
	if el.DataAtom != atom.H1 {
		t.Fatalf("level 0 should clamp to h1, got %v", el.DataAtom)
	}
}

func TestMapEmphasisForms(t *testing.T) {
	leaf := &Node{Type: NodeText, Value: "x"}

	em := Map(&Node{Type: NodeEmphasis, Value: "*", Children: []*Node{leaf}})
	if em.DataAtom != atom.Em {
		t.Fatalf("single delimiter should map to em, got %v", em.DataAtom)
	}

	strong := Map(&Node{Type: NodeEmphasis, Value: "**", Children: []*Node{leaf}})
	if strong.DataAtom != atom.Strong {
		t.Fatalf("double delimiter should map to strong, got %v", strong.DataAtom)
	}

	nested := Map(&Node{Type: NodeEmphasis, Value: "***", Children: []*Node{leaf}})
	if nested.DataAtom != atom.Strong {
		t.Fatalf("triple delimiter outer should be strong, got %v", nested.DataAtom)
	}
	if nested.FirstChild == nil || nested.FirstChild.DataAtom != atom.Em {
		t.Fatalf("triple delimiter should nest em inside strong, got %+v", nested.FirstChild)
	}
}

func TestMapListTagByType(t *testing.T) {
	ul := Map(&Node{Type: NodeList, Meta: NodeMeta{ListType: ListUnordered}})
	if ul.DataAtom != atom.Ul {
		t.Fatalf("unordered list should map to ul, got %v", ul.DataAtom)
	}

	ol := Map(&Node{Type: NodeList, Meta: NodeMeta{ListType: ListOrdered}})
	if ol.DataAtom != atom.Ol {
		t.Fatalf("ordered list should map to ol, got %v", ol.DataAtom)
	}
}

func TestMapTaskListItemStructure(t *testing.T) {
	checked := Map(&Node{
		Type: NodeTaskListItem,
		Meta: NodeMeta{TaskChecked: true},
		Children: []*Node{
			{Type: NodeText, Value: "done"},
		},
	})
	if checked.DataAtom != atom.Li {
		t.Fatalf("task list item should map to li, got %v", checked.DataAtom)
	}

	label := checked.FirstChild
	if label == nil || label.DataAtom != atom.Label {
		t.Fatalf("expected label wrapper, got %+v", label)
	}

	input := label.FirstChild
	if input == nil || input.DataAtom != atom.Input {
		t.Fatalf("expected input as label's first child, got %+v", input)
	}

	var sawChecked, sawDisabled bool
	for _, a := range input.Attr {
		switch a.Key {
		case "checked":
			sawChecked = true
		case "disabled":
			sawDisabled = true
		}
	}
	if !sawChecked || !sawDisabled {
		t.Fatalf("checked input missing attrs: %+v", input.Attr)
	}
}

func TestMapUncheckedTaskHasNoCheckedAttr(t *testing.T) {
	item := Map(&Node{Type: NodeTaskListItem, Meta: NodeMeta{TaskChecked: false}})
	input := item.FirstChild.FirstChild
	for _, a := range input.Attr {
		if a.Key == "checked" {
			t.Fatalf("unchecked task item should not carry a checked attr")
		}
	}
}

func TestMapLinkReferenceFormUsesRefLabel(t *testing.T) {
	n := &Node{
		Type: NodeLink,
		Meta: NodeMeta{IsReference: true, RefLabel: "ref1", LinkURL: "ignored"},
	}
	a := Map(n)
	var href string
	for _, attr := range a.Attr {
		if attr.Key == "href" {
			href = attr.Val
		}
	}
	if href != "ref1" {
		t.Fatalf("reference link should resolve href from RefLabel, got %q", href)
	}
}

func TestMapImageIsVoidWithAltAndSrc(t *testing.T) {
	img := Map(&Node{Type: NodeImage, Meta: NodeMeta{ImageSrc: "a.png", ImageAlt: "alt text"}})
	if img.DataAtom != atom.Img {
		t.Fatalf("got %v", img.DataAtom)
	}
	if img.FirstChild != nil {
		t.Fatalf("img must have no children")
	}

	var src, alt string
	for _, a := range img.Attr {
		switch a.Key {
		case "src":
			src = a.Val
		case "alt":
			alt = a.Val
		}
	}
	if src != "a.png" || alt != "alt text" {
		t.Fatalf("got src=%q alt=%q", src, alt)
	}
}

func TestMapCodeBlockOmitsClassWithoutLanguage(t *testing.T) {
	pre := Map(&Node{Type: NodeCodeBlock, Value: "plain"})
	code := pre.FirstChild
	if code == nil || code.DataAtom != atom.Code {
		t.Fatalf("expected code child, got %+v", code)
	}
	if len(code.Attr) != 0 {
		t.Fatalf("code block without language should have no class attr, got %+v", code.Attr)
	}
}
