package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/beevik/etree"

	oerrors "github.com/paulrobinson/quarkus/internal/errors"
	"github.com/paulrobinson/quarkus/internal/output"
)

// pomMergeWriter merges partial Maven POMs into a pom.xml written earlier
// in the run.
type pomMergeWriter struct {
	markerWriter
	order []string
	docs  map[string][]*etree.Document
}

func newPomMergeWriter() *pomMergeWriter {
	return &pomMergeWriter{
		markerWriter: markerWriter{marker: PomMergeMarker},
		docs:         map[string][]*etree.Document{},
	}
}

func (w *pomMergeWriter) Write(content, target string, _ map[string]any) (string, error) {
	if _, err := os.Stat(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", oerrors.NewPreconditionError("pom-merge target does not exist", target,
				"a codestart processed earlier must write the pom before it can be merged")
		}
		return "", fmt.Errorf("checking %s: %w", target, err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(content); err != nil {
		return "", oerrors.Wrapf(oerrors.ErrConfiguration, err, "parsing pom fragment for %s", target)
	}
	if doc.Root() == nil {
		return "", oerrors.NewConfigurationError("pom fragment has no root element", target, "", "")
	}

	if _, ok := w.docs[target]; !ok {
		w.order = append(w.order, target)
	}
	w.docs[target] = append(w.docs[target], doc)
	return target, nil
}

func (w *pomMergeWriter) Close() error {
	for _, target := range w.order {
		base := etree.NewDocument()
		if err := base.ReadFromFile(target); err != nil {
			return fmt.Errorf("reading %s: %w", target, err)
		}
		if base.Root() == nil {
			return oerrors.NewConfigurationError("pom has no root element", target, "", "")
		}

		for _, doc := range w.docs[target] {
			mergeElement(base.Root(), doc.Root())
		}

		base.Indent(4)
		output.Debug("flushing merged pom", "target", target, "fragments", len(w.docs[target]))
		if err := base.WriteToFile(target); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
	}
	return nil
}

// mergeElement merges src into dst. Children of list containers such as
// <dependencies> are matched by their identity (coordinates, id or text);
// other children are matched by tag. Unmatched children are appended and
// matched leaves take the source text.
func mergeElement(dst, src *etree.Element) {
	keyOf := listKeys[src.Tag]
	for _, child := range src.ChildElements() {
		match := matchingChild(dst, child, keyOf)
		switch {
		case match == nil:
			dst.AddChild(child.Copy())
		case len(child.ChildElements()) == 0:
			match.SetText(child.Text())
			for _, attr := range child.Attr {
				match.CreateAttr(attr.FullKey(), attr.Value)
			}
		default:
			mergeElement(match, child)
		}
	}
}

func matchingChild(parent, child *etree.Element, keyOf func(*etree.Element) string) *etree.Element {
	if keyOf == nil {
		return parent.SelectElement(child.Tag)
	}
	key := keyOf(child)
	for _, candidate := range parent.SelectElements(child.Tag) {
		if keyOf(candidate) == key {
			return candidate
		}
	}
	return nil
}

// listKeys maps a list container tag to the identity of its items.
var listKeys = map[string]func(*etree.Element) string{
	"dependencies":             coordinateKey,
	"exclusions":               coordinateKey,
	"annotationProcessorPaths": coordinateKey,
	"plugins":                  pluginKey,
	"executions":               idKey("default"),
	"repositories":             idKey(""),
	"pluginRepositories":       idKey(""),
	"profiles":                 idKey(""),
	"goals":                    textKey,
	"modules":                  textKey,
	"compilerPlugins":          textKey,
	"compilerArgs":             textKey,
}

func childText(e *etree.Element, tag, def string) string {
	if c := e.SelectElement(tag); c != nil {
		if text := strings.TrimSpace(c.Text()); text != "" {
			return text
		}
	}
	return def
}

func coordinateKey(e *etree.Element) string {
	if len(e.ChildElements()) == 0 {
		return textKey(e)
	}
	return strings.Join([]string{
		childText(e, "groupId", ""),
		childText(e, "artifactId", ""),
		childText(e, "type", "jar"),
		childText(e, "classifier", ""),
	}, ":")
}

func pluginKey(e *etree.Element) string {
	if len(e.ChildElements()) == 0 {
		return textKey(e)
	}
	return childText(e, "groupId", "org.apache.maven.plugins") + ":" + childText(e, "artifactId", "")
}

func idKey(def string) func(*etree.Element) string {
	return func(e *etree.Element) string {
		return childText(e, "id", def)
	}
}

func textKey(e *etree.Element) string {
	return strings.TrimSpace(e.Text())
}
