package handler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"sixcities/internal/domain"
	"sixcities/internal/selector"
	"sixcities/internal/store"

	tele "gopkg.in/telebot.v3"
)

const (
	offersPerPage     = 5
	citiesPerRow      = 3
	maxButtonTitleLen = 28
)

// paginate returns bounds of the requested page, clamped to existing pages
func paginate(total, page, perPage int) (start, end, current, pages int) {
	pages = (total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}

	current = page
	if current < 1 {
		current = 1
	}
	if current > pages {
		current = pages
	}

	start = (current - 1) * perPage
	end = start + perPage
	if end > total {
		end = total
	}
	return start, end, current, pages
}

// stars renders a rating as five stars
func stars(rating float64) string {
	full := domain.RatingPercent(rating) / 20
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}

func favoriteMark(o domain.Offer) string {
	switch {
	case o.IsSaving:
		return "⏳"
	case o.IsFavorite:
		return "♥"
	default:
		return "♡"
	}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}

func offerLine(n int, o domain.Offer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d. ", n)
	if o.IsPremium {
		b.WriteString("[Premium] ")
	}
	b.WriteString(o.Title)
	fmt.Fprintf(&b, "\n   €%d / night · %s · %s", o.Price, o.Type, stars(o.Rating))
	return b.String()
}

func offerRow(m *tele.ReplyMarkup, n int, o domain.Offer) tele.Row {
	title := truncate(fmt.Sprintf("%d. %s", n, o.Title), maxButtonTitleLen)
	return m.Row(
		m.Data(title, prefixOffer+strconv.Itoa(o.ID)),
		m.Data(favoriteMark(o), prefixFav+strconv.Itoa(o.ID)),
	)
}

// banner renders the last error, or "" when there is none
func banner(s store.State) string {
	err := selector.LastError(s)
	if err == nil {
		return ""
	}
	return fmt.Sprintf("⚠️ %s\n\n", err.Message)
}

func accountRow(m *tele.ReplyMarkup, s store.State) tele.Row {
	if selector.IsAuthorized(s) {
		return m.Row(m.Data("Favorites", cbFavorites), m.Data("Sign out", cbLogout))
	}
	return m.Row(m.Data("Sign in", cbLogin))
}

// mainScreen renders offers of the active city; it returns the page shown
func mainScreen(s store.State, page int) (string, *tele.ReplyMarkup, int) {
	offers := selector.CityOffers(s)
	city := selector.ActiveCity(s)
	start, end, current, pages := paginate(len(offers), page, offersPerPage)

	var b strings.Builder
	b.WriteString(banner(s))
	if len(offers) == 0 {
		fmt.Fprintf(&b, "No places to stay available in %s", city)
	} else {
		fmt.Fprintf(&b, "%d places to stay in %s\n", len(offers), city)
		fmt.Fprintf(&b, "Sort by: %s\n", selector.ActiveSort(s).Title())
		for i := start; i < end; i++ {
			b.WriteString("\n")
			b.WriteString(offerLine(i+1, offers[i]))
		}
		if pages > 1 {
			fmt.Fprintf(&b, "\n\nPage %d of %d", current, pages)
		}
	}

	m := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for i := start; i < end; i++ {
		rows = append(rows, offerRow(m, i+1, offers[i]))
	}

	if pages > 1 {
		nav := tele.Row{}
		if current > 1 {
			nav = append(nav, m.Data("⬅️", fmt.Sprintf("%s%d", prefixPage, current-1)))
		}
		if current < pages {
			nav = append(nav, m.Data("➡️", fmt.Sprintf("%s%d", prefixPage, current+1)))
		}
		rows = append(rows, nav)
	}

	cityRow := tele.Row{}
	for _, name := range selector.Cities(s) {
		label := name
		if name == city {
			label = "• " + name
		}
		cityRow = append(cityRow, m.Data(label, prefixCity+name))
		if len(cityRow) == citiesPerRow {
			rows = append(rows, cityRow)
			cityRow = tele.Row{}
		}
	}
	if len(cityRow) > 0 {
		rows = append(rows, cityRow)
	}

	next := selector.ActiveSort(s).Next()
	rows = append(rows, m.Row(m.Data("Sort: "+next.Title(), cbSort)))
	rows = append(rows, accountRow(m, s))

	m.Inline(rows...)
	return b.String(), m, current
}

// offerScreen renders the open offer with its reviews and neighbours
func offerScreen(s store.State) (string, *tele.ReplyMarkup) {
	m := &tele.ReplyMarkup{}
	offer := selector.Offer(s)
	if offer == nil {
		m.Inline(m.Row(m.Data("Back to offers", cbMain)))
		return banner(s) + "This offer is not available", m
	}

	var b strings.Builder
	b.WriteString(banner(s))
	if offer.IsPremium {
		b.WriteString("[Premium]\n")
	}
	fmt.Fprintf(&b, "%s\n", offer.Title)
	fmt.Fprintf(&b, "%s %.1f\n", stars(offer.Rating), offer.Rating)
	fmt.Fprintf(&b, "%s · %d bedrooms · max %d adults\n", offer.Type, offer.Bedrooms, offer.MaxAdults)
	fmt.Fprintf(&b, "€%d / night\n", offer.Price)
	if len(offer.Goods) > 0 {
		fmt.Fprintf(&b, "\nWhat's inside: %s\n", strings.Join(offer.Goods, ", "))
	}

	host := offer.Host.Name
	if offer.Host.IsPro {
		host += " (Pro)"
	}
	fmt.Fprintf(&b, "\nHost: %s\n%s\n", host, offer.Description)

	reviews := selector.FilteredReviews(s)
	fmt.Fprintf(&b, "\nReviews · %d\n", len(selector.Reviews(s)))
	for _, r := range reviews {
		fmt.Fprintf(&b, "\n%s · %s · %s\n%s\n", r.Author.Name, stars(r.Rating), r.DisplayDate(), r.Comment)
	}

	similar := selector.SimilarOffers(s)
	if len(similar) > 0 {
		b.WriteString("\nOther places in the neighbourhood\n")
		for i, o := range similar {
			b.WriteString("\n")
			b.WriteString(offerLine(i+1, o))
		}
	}

	label := "♡ To bookmarks"
	if offer.IsFavorite {
		label = "♥ In bookmarks"
	}
	if offer.IsSaving {
		label = "⏳ Saving"
	}

	rows := []tele.Row{m.Row(m.Data(label, prefixFav+strconv.Itoa(offer.ID)))}
	if selector.IsAuthorized(s) {
		rows = append(rows, m.Row(m.Data("Write a review", prefixReview+strconv.Itoa(offer.ID))))
	}
	for i, o := range similar {
		rows = append(rows, offerRow(m, i+1, o))
	}
	rows = append(rows, m.Row(m.Data("Back to offers", cbMain)))

	m.Inline(rows...)
	return b.String(), m
}

// favoritesScreen renders bookmarked offers grouped by city
func favoritesScreen(s store.State) (string, *tele.ReplyMarkup) {
	m := &tele.ReplyMarkup{}
	groups := selector.FavoritesByCity(s)

	var b strings.Builder
	b.WriteString(banner(s))
	rows := []tele.Row{}

	if len(groups) == 0 {
		b.WriteString("Nothing yet saved.\nSave properties to narrow down search or plan your future trips.")
	} else {
		b.WriteString("Saved listing\n")
		n := 0
		for _, g := range groups {
			fmt.Fprintf(&b, "\n%s\n", g.City)
			for _, o := range g.Offers {
				n++
				b.WriteString(offerLine(n, o))
				b.WriteString("\n")
				rows = append(rows, offerRow(m, n, o))
			}
		}
	}

	rows = append(rows, m.Row(m.Data("Back to offers", cbMain)))
	m.Inline(rows...)
	return b.String(), m
}

func loginScreen(s store.State) (string, *tele.ReplyMarkup) {
	m := &tele.ReplyMarkup{}
	m.Inline(m.Row(m.Data("Cancel", cbCancel)))
	return banner(s) + "Sign in\n\nSend your e-mail:", m
}

func ratingMarkup() *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	row := tele.Row{}
	for i := domain.MinReviewRating; i <= domain.MaxReviewRating; i++ {
		row = append(row, m.Data(strconv.Itoa(i)+"★", prefixRate+strconv.Itoa(i)))
	}
	m.Inline(row, m.Row(m.Data("Cancel", cbCancel)))
	return m
}

func cancelMarkup() *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(m.Row(m.Data("Cancel", cbCancel)))
	return m
}
