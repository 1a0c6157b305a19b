package recipes

import (
	"strings"

	"cookbook/text"
)

const messyLine = "asdf fjdk; afed, fjek,asdf,       foo"

func splitDelimiters(p *printer) error {
	fields, err := text.Split(`[;,\s]\s*`, messyLine)
	if err != nil {
		return err
	}
	p.println(fields)

	fields, err = text.Split(`(;|,|\s)\s*`, messyLine)
	if err != nil {
		return err
	}
	p.printf("%q\n", fields)

	values, delimiters, err := text.SplitKeep(`(;|,|\s)\s*`, messyLine)
	if err != nil {
		return err
	}
	p.println(values)
	p.printf("%q\n", delimiters)
	p.println(text.Rejoin(values, delimiters))

	fields, err = text.Split(`(?:,|;|\s)\s*`, messyLine)
	if err != nil {
		return err
	}
	p.println(fields)
	p.println(text.SplitAny(messyLine, "; ,"))
	return nil
}

func prefixSuffix(p *printer) error {
	const url = "http://www.python.org"
	p.println(text.HasAnySuffix("spam.txt", ".txt"))
	p.println(text.HasAnyPrefix("spam.txt", "file:"))
	p.println(text.HasAnyPrefix(url, "http:"))

	filenames := []string{"Makefile", "foo.c", "bar.py", "spam.c", "spam.h"}
	p.println(text.FilterSuffix(filenames, ".c", ".h"))
	p.println(len(text.FilterSuffix(filenames, ".py")) > 0)

	choices := []string{"http:", "ftp:"}
	p.println(text.HasAnyPrefix(url, choices...))

	m, err := text.Match(`http:|https:|ftp:`, url)
	if err != nil {
		return err
	}
	p.println(m)
	return nil
}

func wildcards(p *printer) error {
	p.println(
		text.WildcardMatchCase("foo.txt", "*.txt"),
		text.WildcardMatchCase("foo.txt", "?oo.txt"),
		text.WildcardMatchCase("Dat45.csv", "Dat[0-9]*"),
	)
	names := []string{"Dat1.csv", "Dat2.csv", "config.ini", "foo.py"}
	p.println(text.WildcardFilter(names, "Dat*.csv"))
	p.println(text.WildcardMatchCase("foo.txt", "*.TXT"), text.WildcardMatchFold("foo.txt", "*.TXT"))

	addresses := []string{
		"5412 N CLARK ST",
		"1060 W ADDISON ST",
		"1039 W GRANVILLE AVE",
		"2122 N CLARK ST",
		"4802 N BROADWAY",
	}
	var streets, clark []string
	for _, addr := range addresses {
		if text.WildcardMatchCase(addr, "* ST") {
			streets = append(streets, addr)
		}
		if text.WildcardMatchCase(addr, "54[0-9][0-9] *CLARK*") {
			clark = append(clark, addr)
		}
	}
	p.printf("%q\n", streets)
	p.printf("%q\n", clark)
	return nil
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}

func regex(p *printer) error {
	const chant = "yeah, but no, but yeah, but no, but yeah"
	p.println(chant == "yeah", strings.HasPrefix(chant, "yeah"), strings.HasSuffix(chant, "no"), strings.Index(chant, "no"))

	datepat, err := text.Compile(`\d+/\d+/\d+`)
	if err != nil {
		return err
	}
	p.println(yesNo(datepat.Match("11/27/2021") != nil))
	p.println(yesNo(datepat.Match("Nov 27, 2021") != nil))

	const dates = "Today is 11/27/2021. PyCon starts 3/13/2022."
	p.println(datepat.FindAll(dates))

	datepat, err = text.Compile(`(\d+)/(\d+)/(\d+)`)
	if err != nil {
		return err
	}
	m := datepat.Match("11/27/2021")
	p.println(m)
	p.println(m.Group(0), m.Group(1), m.Group(2), m.Group(3))
	p.println(m.Groups())

	for _, g := range datepat.FindAll(dates) {
		p.printf("%s-%s-%s\n", g[2], g[0], g[1])
	}
	for m := range datepat.FindIter(dates) {
		p.println(m.Groups())
	}

	p.println(datepat.Match("11/27/2021abcdef").Group(0))

	anchored, err := text.Compile(`(\d+)/(\d+)/(\d+)$`)
	if err != nil {
		return err
	}
	p.println(anchored.Match("11/27/2021abcdef") == nil)
	p.println(anchored.Match("11/27/2021"))

	all, err := text.FindAll(`(\d+)/(\d+)/(\d+)`, dates)
	if err != nil {
		return err
	}
	p.println(all)
	return nil
}
