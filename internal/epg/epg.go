package epg

import (
	"fmt"
	"sort"

	"github.com/beevik/etree"

	"plutoiptv/internal/fileutil"
)

// Channel describes one <channel> element.
type Channel struct {
	ID          string
	DisplayName string
	Icon        string
}

// Programme describes one <programme> element. Optional fields render
// only when non-empty.
type Programme struct {
	Channel       string
	Start         string
	Stop          string
	Title         string
	SubTitle      string
	Desc          string
	Date          string
	Categories    []string
	Lang          string
	LengthMinutes string
	EpisodeNum    string
	Rating        string
	Icon          string
}

// Builder assembles an XMLTV document.
type Builder struct {
	doc      *etree.Document
	tv       *etree.Element
	elements []*etree.Element
	done     bool
}

// NewBuilder returns a builder with the XML declaration, DOCTYPE and
// <tv> root already in place.
func NewBuilder(generatorName, generatorURL string) *Builder {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(`DOCTYPE tv SYSTEM "xmltv.dtd"`)

	tv := doc.CreateElement("tv")
	tv.CreateAttr("generator-info-name", generatorName)
	tv.CreateAttr("generator-info-url", generatorURL)

	return &Builder{doc: doc, tv: tv}
}

// AddChannel appends a channel element.
func (b *Builder) AddChannel(c Channel) {
	el := etree.NewElement("channel")
	el.CreateAttr("id", c.ID)
	el.CreateElement("display-name").SetText(c.DisplayName)
	if c.Icon != "" {
		el.CreateElement("icon").CreateAttr("src", c.Icon)
	}
	b.elements = append(b.elements, el)
}

// AddProgramme appends a programme element.
func (b *Builder) AddProgramme(p Programme) {
	el := etree.NewElement("programme")
	el.CreateAttr("start", p.Start)
	el.CreateAttr("stop", p.Stop)
	el.CreateAttr("channel", p.Channel)

	title := el.CreateElement("title")
	title.CreateAttr("lang", p.Lang)
	title.SetText(p.Title)
	if p.SubTitle != "" {
		sub := el.CreateElement("sub-title")
		sub.CreateAttr("lang", p.Lang)
		sub.SetText(p.SubTitle)
	}
	if p.Desc != "" {
		desc := el.CreateElement("desc")
		desc.CreateAttr("lang", p.Lang)
		desc.SetText(p.Desc)
	}
	if p.Date != "" {
		el.CreateElement("date").SetText(p.Date)
	}
	for _, c := range p.Categories {
		cat := el.CreateElement("category")
		cat.CreateAttr("lang", p.Lang)
		cat.SetText(c)
	}
	if p.LengthMinutes != "" {
		length := el.CreateElement("length")
		length.CreateAttr("units", "minutes")
		length.SetText(p.LengthMinutes)
	}
	if p.Icon != "" {
		el.CreateElement("icon").CreateAttr("src", p.Icon)
	}
	if p.EpisodeNum != "" {
		num := el.CreateElement("episode-num")
		num.CreateAttr("system", "onscreen")
		num.SetText(p.EpisodeNum)
	}
	if p.Rating != "" {
		rating := el.CreateElement("rating")
		rating.CreateAttr("system", "US")
		rating.CreateElement("value").SetText(p.Rating)
	}
	b.elements = append(b.elements, el)
}

// Finalize sorts accumulated elements and attaches them to the root.
// Channels sort before programmes; within each kind order is by channel
// id so output is stable regardless of feed order. Finalize is
// idempotent.
func (b *Builder) Finalize() {
	if b.done {
		return
	}
	sort.SliceStable(b.elements, func(i, j int) bool {
		a, z := b.elements[i], b.elements[j]
		if a.Tag != z.Tag {
			return a.Tag < z.Tag
		}
		return sortKey(a) < sortKey(z)
	})
	for _, el := range b.elements {
		b.tv.AddChild(el)
	}
	b.done = true
}

func sortKey(el *etree.Element) string {
	if el.Tag == "channel" {
		return el.SelectAttrValue("id", "")
	}
	return el.SelectAttrValue("channel", "")
}

// Render finalizes and serializes the document.
func (b *Builder) Render() ([]byte, error) {
	b.Finalize()
	b.doc.Indent(2)
	data, err := b.doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serialize epg: %w", err)
	}
	return data, nil
}

// WriteFile renders the document and writes it atomically.
func (b *Builder) WriteFile(path string) error {
	data, err := b.Render()
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write epg: %w", err)
	}
	return nil
}
