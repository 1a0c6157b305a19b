package recipes

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"cookbook/counter"
	"cookbook/mapsutil"
	"cookbook/queues"
	"cookbook/records"
	"cookbook/seqs"
	"cookbook/sliceutil"
	"cookbook/text"
)

func unpackSequence(p *printer) error {
	x, y, err := sliceutil.Unpack2([]int{4, 5})
	if err != nil {
		return err
	}
	p.println(x, y)

	year, mon, day, err := sliceutil.Unpack3([]int{2012, 12, 21})
	if err != nil {
		return err
	}
	p.println(year, mon, day)

	h, middle, o, err := sliceutil.FirstMiddleLast([]rune("Hello"))
	if err != nil {
		return err
	}
	p.printf("%c %s %c\n", h, string(middle), o)

	_, _, _, err = sliceutil.Unpack3([]int{4, 5})
	p.println("error:", err)
	return nil
}

func unpackStar(p *printer) error {
	record := []string{"Dave", "dave@example.com", "773-424-4432", "843-956-0100"}
	name, rest, err := sliceutil.HeadTail(record)
	if err != nil {
		return err
	}
	email, phoneNumbers, err := sliceutil.HeadTail(rest)
	if err != nil {
		return err
	}
	p.println(name, email)
	p.println(phoneNumbers)

	sales := []float64{92.4, 93.1, 93.8, 89.9, 90.1, 90.7, 93.6, 98.7}
	trailing, current, err := sliceutil.InitLast(sales)
	if err != nil {
		return err
	}
	p.println(trailing)
	p.println(current)

	tagged := [][]any{{"foo", 1, 2}, {"bar", "hello"}, {"foo", 3, 4}}
	for _, rec := range tagged {
		tag, args, err := sliceutil.HeadTail(rec)
		if err != nil {
			return err
		}
		p.println(append([]any{tag}, args...)...)
	}

	line := "nobody:*:-2:-2:Unprivileged User:/var/empty:/usr/bin/false"
	uname, fields, sh, err := sliceutil.FirstMiddleLast(strings.Split(line, ":"))
	if err != nil {
		return err
	}
	_, homedir, err := sliceutil.InitLast(fields)
	if err != nil {
		return err
	}
	p.println(uname, homedir, sh)

	items := []int{1, 10, 7, 4, 5, 9}
	head, tail, err := sliceutil.HeadTail(items)
	if err != nil {
		return err
	}
	p.println(head, tail)
	p.println(recursiveSum(items))
	return nil
}

func recursiveSum(items []int) int {
	head, tail, err := sliceutil.HeadTail(items)
	if err != nil {
		return 0
	}
	return head + recursiveSum(tail)
}

func keepLastN(p *printer) error {
	q := queues.NewBoundedDeque[int](3)
	q.PushBackAll(1, 2, 3)
	p.println(q)
	q.PushBack(4)
	p.println(q)
	q.PushBack(5)
	p.println(q)

	u := queues.NewDeque[int](0)
	u.PushBackAll(1, 2, 3)
	p.println(u)
	u.PushFront(4)
	p.println(u)
	back, err := u.PopBack()
	if err != nil {
		return err
	}
	p.println(back)
	p.println(u)
	front, err := u.PopFront()
	if err != nil {
		return err
	}
	p.println(front)

	lines := []string{
		"Keeping a limited history",
		"python yields values",
		"deque drops the oldest",
		"iterators are lazy",
		"a python generator",
		"done",
	}
	for line, previous := range text.SearchWithHistory(slices.Values(lines), "python", 2) {
		for _, prev := range previous {
			p.println(prev)
		}
		p.println(line)
		p.println(strings.Repeat("-", 20))
	}
	return nil
}

type holding struct {
	Name   string
	Shares int
	Price  float64
}

func largestSmallest(p *printer) error {
	nums := []int{1, 8, 2, 23, 7, -4, 18, 23, 42, 37, 2}
	p.println(sliceutil.Largest(nums, 3))
	p.println(sliceutil.Smallest(nums, 3))

	portfolio := []holding{
		{"IBM", 100, 91.1},
		{"AAPL", 50, 543.22},
		{"FB", 200, 21.09},
		{"HPQ", 35, 31.75},
		{"YHOO", 45, 16.35},
		{"ACME", 75, 115.65},
	}
	price := func(h holding) float64 { return h.Price }
	name := func(h holding) string { return h.Name }
	p.println("cheap:", sliceutil.Map(sliceutil.SmallestBy(portfolio, 3, price), name))
	p.println("expensive:", sliceutil.Map(sliceutil.LargestBy(portfolio, 3, price), name))

	heap := queues.NewPriorityQueue[int, int](len(nums), queues.MinFirst)
	for _, n := range nums {
		heap.Push(n, n)
	}
	p.println(seqs.Collect(seqs.Take(heap.Drain(), 3)))
	return nil
}

type item struct {
	name string
}

func (it item) String() string {
	return fmt.Sprintf("Item(%q)", it.name)
}

func priorityQueue(p *printer) error {
	q := queues.NewPriorityQueue[item, int](4, queues.MaxFirst)
	q.Push(item{"foo"}, 1)
	q.Push(item{"bar"}, 5)
	q.Push(item{"spam"}, 4)
	q.Push(item{"grok"}, 1)
	for !q.IsEmpty() {
		it, err := q.Pop()
		if err != nil {
			return err
		}
		p.println(it)
	}
	_, err := q.Pop()
	p.println("error:", err)
	return nil
}

func multidict(p *printer) error {
	d := mapsutil.NewListMultimap[string, int]()
	d.Put("a", 1)
	d.Put("a", 2)
	d.Put("b", 4)
	p.println("list:", d.Map())

	s := mapsutil.NewSetMultimap[string, int]()
	s.PutAll("a", 1, 2, 2)
	s.Put("b", 4)
	p.println("set:", s.Map())

	pairs := []lo.Entry[string, int]{{Key: "a", Value: 1}, {Key: "a", Value: 2}, {Key: "b", Value: 4}}
	p.println("grouped:", mapsutil.GroupPairs(pairs))
	return nil
}

func orderedDict(p *printer) error {
	d := mapsutil.NewOrderedMap[string, int]()
	d.Set("foo", 1)
	d.Set("bar", 2)
	d.Set("spam", 3)
	d.Set("grok", 4)
	for k, v := range d.All() {
		p.println(k, v)
	}

	data, err := d.MarshalJSON()
	if err != nil {
		return err
	}
	p.println(string(data))

	d.MoveToEnd("foo")
	p.println(d.Keys())
	return nil
}

var stockPrices = map[string]float64{
	"ACME": 45.23,
	"AAPL": 612.78,
	"IBM":  205.55,
	"HPQ":  37.20,
	"FB":   10.75,
}

func dictCalc(p *printer) error {
	minPrice, _ := mapsutil.MinByValue(stockPrices)
	maxPrice, _ := mapsutil.MaxByValue(stockPrices)
	p.println("min:", minPrice)
	p.println("max:", maxPrice)
	p.println("sorted:", mapsutil.SortedByValue(stockPrices))

	minKey, _ := mapsutil.MinKey(stockPrices)
	maxKey, _ := mapsutil.MaxKey(stockPrices)
	p.println("keys:", minKey, maxKey)

	ties := map[string]float64{"AAA": 45.23, "ZZZ": 45.23}
	low, _ := mapsutil.MinByValue(ties)
	high, _ := mapsutil.MaxByValue(ties)
	p.println("ties:", low, high)
	return nil
}

func dictCommon(p *printer) error {
	a := map[string]int{"x": 1, "y": 2, "z": 3}
	b := map[string]int{"w": 10, "x": 11, "y": 2}

	p.println("common keys:", mapsutil.CommonKeys(a, b))
	p.println("a - b keys:", mapsutil.KeysDifference(a, b))
	p.println("common items:", mapsutil.CommonItems(a, b))

	keep := mapsutil.StringKeySet(a)
	keep.Remove("z", "w")
	p.println("filtered:", mapsutil.SelectKeys(a, keep.List()...))
	return nil
}

type point struct {
	X, Y int
}

func dedupe(p *printer) error {
	a := []int{1, 5, 2, 1, 9, 1, 5, 10}
	p.println(seqs.Collect(seqs.Distinct(slices.Values(a))))

	points := []point{{1, 2}, {1, 3}, {1, 2}, {2, 4}}
	p.println(sliceutil.Unique(points))
	p.println(seqs.Collect(seqs.DistinctBy(slices.Values(points), func(pt point) int { return pt.X })))
	return nil
}

func namedSlice(p *printer) error {
	record := strings.Repeat(".", 20) + "100" + strings.Repeat(" ", 10) +
		strings.Repeat(".", 7) + "513.25" + strings.Repeat(" ", 5) + strings.Repeat(".", 10)
	sharesField := sliceutil.NewSpan(20, 32)
	priceField := sliceutil.NewSpan(40, 48)

	shares, err := strconv.Atoi(strings.TrimSpace(sharesField.Text(record)))
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(priceField.Text(record)), 64)
	if err != nil {
		return err
	}
	p.printf("cost: %.2f\n", float64(shares)*price)

	items := []int{0, 1, 2, 3, 4, 5, 6}
	a := sliceutil.NewSpan(2, 4)
	p.println(sliceutil.Slice(items, a))
	items, err = sliceutil.AssignSlice(items, a, []int{10, 11})
	if err != nil {
		return err
	}
	p.println(items)
	p.println(sliceutil.DeleteSlice(items, a))

	const hello = "HelloWorld"
	s := sliceutil.Span{Start: 5, Stop: 50, Step: 2}
	p.println(s)
	start, stop, step := s.Indices(len(hello))
	p.println(start, stop, step)
	for i := range seqs.Range(start, stop, step) {
		p.println(string(hello[i]))
	}
	p.println(s.Text(hello))
	return nil
}

var words = []string{
	"look", "into", "my", "eyes", "look", "into", "my", "eyes",
	"the", "eyes", "the", "eyes", "the", "eyes", "not", "around", "the",
	"eyes", "don't", "look", "around", "the", "eyes", "look", "into",
	"my", "eyes", "you're", "under",
}

var moreWords = []string{"why", "are", "you", "not", "looking", "in", "my", "eyes"}

func mostCommon(p *printer) error {
	wordCounts := counter.New(words...)
	p.println(wordCounts.MostCommon(3))
	p.println(wordCounts.Get("not"), wordCounts.Get("eyes"))

	for _, w := range moreWords {
		wordCounts.Add(w)
	}
	p.println(wordCounts.Get("eyes"))
	wordCounts.Update(moreWords...)
	p.println(wordCounts.MostCommon(3))

	a := counter.New(words...)
	b := counter.New(moreWords...)
	p.println(a.Plus(b).MostCommon(5))
	p.println(a.Minus(b))
	return nil
}

type row struct {
	FName, LName string
	UID          int
}

func (r row) String() string {
	return fmt.Sprintf("%s %s (%d)", r.FName, r.LName, r.UID)
}

func joinStrings[T fmt.Stringer](items []T) string {
	return strings.Join(sliceutil.Map(items, func(v T) string { return v.String() }), ", ")
}

func sortByKey(p *printer) error {
	rows := []row{
		{"Brian", "Jones", 1003},
		{"David", "Beazley", 1002},
		{"John", "Cleese", 1001},
		{"Big", "Jones", 1004},
	}
	fname := func(r row) string { return r.FName }
	lname := func(r row) string { return r.LName }
	uid := func(r row) int { return r.UID }

	p.println("by fname:", joinStrings(sliceutil.SortedBy(rows, sliceutil.By(fname))))
	p.println("by uid:", joinStrings(sliceutil.SortedBy(rows, sliceutil.By(uid))))
	p.println("by lname, fname:", joinStrings(sliceutil.SortedBy(rows, sliceutil.Then(sliceutil.By(lname), sliceutil.By(fname)))))

	lowest, _ := sliceutil.MinBy(rows, uid)
	highest, _ := sliceutil.MaxBy(rows, uid)
	p.println("min uid:", lowest)
	p.println("max uid:", highest)
	return nil
}

type user struct {
	ID int
}

func (u user) String() string { return fmt.Sprintf("User(%d)", u.ID) }

type hero struct {
	First, Last string
}

func (h hero) String() string { return h.First + " " + h.Last }

func sortObjects(p *printer) error {
	users := []user{{23}, {3}, {99}}
	id := func(u user) int { return u.ID }
	p.println(users)
	p.println(sliceutil.SortedBy(users, sliceutil.By(id)))

	avengers := []hero{
		{"Peter", "Parker"},
		{"Tony", "Stark"},
		{"Bruce", "Banner"},
		{"Thor", "Odenson"},
		{"Loki", "Odenson"},
	}
	byName := sliceutil.Then(
		sliceutil.By(func(h hero) string { return h.Last }),
		sliceutil.By(func(h hero) string { return h.First }),
	)
	p.println(joinStrings(sliceutil.SortedBy(avengers, byName)))

	lowest, _ := sliceutil.MinBy(users, id)
	highest, _ := sliceutil.MaxBy(users, id)
	p.println(lowest, highest)
	return nil
}

func filterSequence(p *printer) error {
	mylist := []int{1, 4, -5, 10, -7, 2, 3, -1}
	positive := func(n int) bool { return n > 0 }
	p.println(sliceutil.Filter(mylist, positive))
	p.println(sliceutil.Filter(mylist, func(n int) bool { return n < 0 }))

	values := []string{"1", "2", "-3", "-", "4", "N/A", "5"}
	ivals := sliceutil.Filter(values, func(v string) bool {
		_, err := strconv.Atoi(v)
		return err == nil
	})
	p.println(ivals)

	squares := seqs.Map(seqs.Filter(slices.Values(mylist), positive), func(n int) int { return n * n })
	p.println(seqs.Collect(squares))

	p.println(sliceutil.Replace(mylist, func(n int) bool { return n <= 0 }, 0))
	p.println(sliceutil.Replace(mylist, func(n int) bool { return n >= 0 }, 0))

	addresses := []string{
		"5412 N CLARK",
		"5148 N CLARK",
		"5800 E 58TH",
		"2122 N CLARK",
		"5645 N RAVENSWOOD",
		"1060 W ADDISON",
		"4801 N BROADWAY",
		"1039 W GRANVILLE",
	}
	counts := []int{0, 3, 10, 4, 1, 7, 6, 1}
	more5 := sliceutil.Map(counts, func(n int) bool { return n > 5 })
	p.println(more5)
	p.printf("%q\n", sliceutil.Compress(addresses, more5))
	return nil
}

func dictSubset(p *printer) error {
	p.println(mapsutil.Select(stockPrices, func(_ string, v float64) bool { return v > 200 }))
	techNames := []string{"AAPL", "IBM", "HPQ", "MSFT"}
	p.println(mapsutil.SelectKeys(stockPrices, techNames...))
	p.println(mapsutil.Without(stockPrices, techNames...))
	return nil
}

func namedTuple(p *printer) error {
	subscriber, err := records.NewSchema("Subscriber", "addr", "joined")
	if err != nil {
		return err
	}
	sub, err := subscriber.New("jonesy@example.com", "2021-10-19")
	if err != nil {
		return err
	}
	p.println(sub)
	addr, _ := sub.Get("addr")
	p.println(addr, sub.Len())

	stock, err := records.NewSchema("Stock", "name", "shares", "price")
	if err != nil {
		return err
	}
	rows := [][]any{{"ACME", 100, 123.45}, {"IBM", 50, 91.1}}
	total := 0.0
	for _, r := range rows {
		s, err := stock.New(r...)
		if err != nil {
			return err
		}
		var (
			name   string
			shares int
			price  float64
		)
		if err := s.Unpack(&name, &shares, &price); err != nil {
			return err
		}
		total += float64(shares) * price
	}
	p.printf("total cost: %.2f\n", total)

	s, err := stock.New("ACME", 100, 123.45)
	if err != nil {
		return err
	}
	p.println(s)
	s, err = s.Replace(map[string]any{"shares": 75})
	if err != nil {
		return err
	}
	p.println(s)

	full, err := records.NewSchema("Stock", "name", "shares", "price", "date", "time")
	if err != nil {
		return err
	}
	prototype, err := full.New("", 0, 0.0, nil, nil)
	if err != nil {
		return err
	}
	for _, m := range []map[string]any{
		{"name": "ACME", "shares": 100, "price": 123.45},
		{"name": "ACME", "shares": 100, "price": 123.45, "date": "12/12/2021"},
	} {
		rec, err := prototype.Replace(m)
		if err != nil {
			return err
		}
		p.println(rec)
	}
	return nil
}

func transformReduce(p *printer) error {
	nums := []int{1, 2, 3, 4, 5}
	p.println(seqs.Sum(seqs.Map(slices.Values(nums), func(x int) int { return x * x })))

	files := []string{"README.md", "main.go", "setup.py"}
	if seqs.Any(slices.Values(files), func(name string) bool { return strings.HasSuffix(name, ".py") }) {
		p.println("There be python!")
	} else {
		p.println("Sorry, no python.")
	}

	fields := []any{"ACME", 50, 123.45}
	p.println(seqs.Join(seqs.Map(slices.Values(fields), func(v any) string { return fmt.Sprint(v) }), ","))

	type position struct {
		Name   string
		Shares int
	}
	portfolio := []position{{"GOOG", 50}, {"YHOO", 75}, {"AOL", 20}, {"SCOX", 65}}
	shares := func(s position) int { return s.Shares }
	minShares, _ := seqs.Min(seqs.Map(slices.Values(portfolio), shares))
	p.println(minShares)
	smallest, _ := seqs.MinBy(slices.Values(portfolio), shares)
	p.println(smallest)
	return nil
}

func chainMap(p *printer) error {
	a := map[string]int{"x": 1, "z": 3}
	b := map[string]int{"y": 2, "z": 4}
	c := mapsutil.NewChainMap(a, b)

	x, _ := c.Get("x")
	y, _ := c.Get("y")
	z, _ := c.Get("z")
	p.println(x, y, z)
	p.println(c.Len(), c.Keys(), c.Values())

	c.Set("z", 10)
	c.Set("w", 40)
	if err := c.Delete("x"); err != nil {
		return err
	}
	p.println(a)
	p.println("error:", c.Delete("y"))

	values := mapsutil.NewChainMap[string, int]()
	values.Set("x", 1)
	values = values.NewChild()
	values.Set("x", 2)
	values = values.NewChild()
	values.Set("x", 3)
	p.println(values.Maps())
	for range 3 {
		v, _ := values.Get("x")
		p.println(v)
		values = values.Parents()
	}

	a = map[string]int{"x": 1, "z": 3}
	b = map[string]int{"y": 2, "z": 4}
	merged := mapsutil.Merge(a, b)
	p.println("merged:", merged["x"], merged["y"], merged["z"])
	chained := mapsutil.NewChainMap(a, b)
	a["x"] = 42
	cx, _ := chained.Get("x")
	p.printf("after update: merged=%d chained=%d\n", merged["x"], cx)
	return nil
}
