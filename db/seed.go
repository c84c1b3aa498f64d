package db

import (
	"fmt"
	"time"

	"gamehub/models"

	"gorm.io/gorm"
)

// SeedData is a full fixture set. Reviews and comments are inserted in slice
// order, so on an empty store review_id and comment_id follow their index + 1.
type SeedData struct {
	Categories []models.Category
	Users      []models.User
	Reviews    []models.Review
	Comments   []models.Comment
}

// Seed replaces the store contents with data in a single transaction.
func Seed(gdb *gorm.DB, data SeedData) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		if err := truncate(tx); err != nil {
			return err
		}
		if len(data.Categories) > 0 {
			if err := tx.Create(&data.Categories).Error; err != nil {
				return fmt.Errorf("seed categories: %w", err)
			}
		}
		if len(data.Users) > 0 {
			if err := tx.Create(&data.Users).Error; err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
		}
		if len(data.Reviews) > 0 {
			if err := tx.Create(&data.Reviews).Error; err != nil {
				return fmt.Errorf("seed reviews: %w", err)
			}
		}
		if len(data.Comments) > 0 {
			if err := tx.Create(&data.Comments).Error; err != nil {
				return fmt.Errorf("seed comments: %w", err)
			}
		}
		return nil
	})
}

func truncate(tx *gorm.DB) error {
	if tx.Dialector.Name() == "postgres" {
		return tx.Exec("TRUNCATE comments, reviews, users, categories RESTART IDENTITY CASCADE").Error
	}

	all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []interface{}{&models.Comment{}, &models.Review{}, &models.User{}, &models.Category{}} {
		if err := all.Delete(model).Error; err != nil {
			return fmt.Errorf("truncate: %w", err)
		}
	}
	return nil
}

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

const (
	lorem = "Consectetur incididunt id eu fugiat elit. Non aliqua amet sint excepteur laboris consequat proident esse."
	pexel = "https://images.pexels.com/photos/5350049/pexels-photo-5350049.jpeg?w=700&h=700"
)

// TestData is the reference fixture set. "children's games" has no reviews
// and review 1 has no comments.
func TestData() SeedData {
	return SeedData{
		Categories: []models.Category{
			{Slug: "euro game", Description: "Abstact games that involve little luck"},
			{Slug: "social deduction", Description: "Players attempt to uncover each other's hidden role"},
			{Slug: "dexterity", Description: "Games involving physical skill"},
			{Slug: "children's games", Description: "Games suitable for children"},
		},
		Users: []models.User{
			{Username: "mallionaire", Name: "haz", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			{Username: "philippaclaire9", Name: "philippa", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
			{Username: "bainesface", Name: "sarah", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
			{Username: "dav3rid", Name: "dave", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
		},
		Reviews: []models.Review{
			{Title: "Agricola", Designer: "Uwe Rosenberg", Owner: "mallionaire", ReviewImgURL: "https://images.pexels.com/photos/974314/pexels-photo-974314.jpeg?w=700&h=700", ReviewBody: "Farmyard fun!", Category: "euro game", CreatedAt: ts("2021-01-18T10:00:20.514Z"), Votes: 1},
			{Title: "Jenga", Designer: "Leslie Scott", Owner: "philippaclaire9", ReviewImgURL: "https://images.pexels.com/photos/4473494/pexels-photo-4473494.jpeg?w=700&h=700", ReviewBody: "Fiddly fun for all the family", Category: "dexterity", CreatedAt: ts("2021-01-18T10:01:41.251Z"), Votes: 5},
			{Title: "Ultimate Werewolf", Designer: "Akihisa Okui", Owner: "bainesface", ReviewImgURL: pexel, ReviewBody: "We couldn't find the werewolf!", Category: "social deduction", CreatedAt: ts("2021-01-18T10:01:41.251Z"), Votes: 5},
			{Title: "Dolor reprehenderit", Designer: "Gamey McGameface", Owner: "mallionaire", ReviewImgURL: pexel, ReviewBody: lorem, Category: "social deduction", CreatedAt: ts("2021-01-22T11:35:50.936Z"), Votes: 7},
			{Title: "Proident tempor et.", Designer: "Seymour Buttz", Owner: "mallionaire", ReviewImgURL: pexel, ReviewBody: lorem, Category: "social deduction", CreatedAt: ts("2021-01-07T09:06:08.077Z"), Votes: 5},
			{Title: "Occaecat consequat officia in quis commodo.", Designer: "Ollie Tabooger", Owner: "mallionaire", ReviewImgURL: pexel, ReviewBody: lorem, Category: "social deduction", CreatedAt: ts("2020-09-13T15:19:28.077Z"), Votes: 8},
			{Title: "Mollit elit qui incididunt veniam occaecat cupidatat", Designer: "Avery Wunzboogerz", Owner: "mallionaire", ReviewImgURL: pexel, ReviewBody: lorem, Category: "social deduction", CreatedAt: ts("2021-01-25T11:16:54.963Z"), Votes: 9},
			{Title: "One Night Ultimate Werewolf", Designer: "Akihisa Okui", Owner: "mallionaire", ReviewImgURL: pexel, ReviewBody: "We couldn't find the werewolf!", Category: "social deduction", CreatedAt: ts("2021-01-18T10:01:41.251Z"), Votes: 5},
			{Title: "A truly Quacking Game; Quacks of Quedlinburg", Designer: "Wolfgang Warsch", Owner: "mallionaire", ReviewImgURL: pexel, ReviewBody: "Ever wish you could try your hand at mixing potions?", Category: "social deduction", CreatedAt: ts("2021-01-18T10:01:41.251Z"), Votes: 10},
			{Title: "Build you own tour de Yorkshire", Designer: "Asger Harding Granerud", Owner: "mallionaire", ReviewImgURL: pexel, ReviewBody: "Cold rain pours on the faces of your team of cyclists.", Category: "social deduction", CreatedAt: ts("2021-01-18T10:01:41.251Z"), Votes: 10},
			{Title: "That's just what an evil person would say!", Designer: "Fiona Lohoar", Owner: "mallionaire", ReviewImgURL: pexel, ReviewBody: "If you've ever wanted to accuse your siblings of being a villain, this is the game.", Category: "social deduction", CreatedAt: ts("2021-01-18T10:01:41.251Z"), Votes: 8},
			{Title: "Scythe; you're gonna need a bigger table!", Designer: "Jamey Stegmaier", Owner: "mallionaire", ReviewImgURL: pexel, ReviewBody: "Spend 30 minutes just setting up all of the pieces.", Category: "social deduction", CreatedAt: ts("2021-01-22T10:37:04.839Z"), Votes: 100},
			{Title: "Settlers of Catan: Don't Settle For Less", Designer: "Klaus Teuber", Owner: "mallionaire", ReviewImgURL: pexel, ReviewBody: "You have stumbled across an uncharted island rich in natural resources.", Category: "social deduction", CreatedAt: ts("1970-01-10T02:08:38.400Z"), Votes: 16},
		},
		Comments: []models.Comment{
			{Body: "I loved this game too!", Votes: 16, Author: "bainesface", ReviewID: 2, CreatedAt: ts("2017-11-22T12:43:33.389Z")},
			{Body: "My dog loved this game too!", Votes: 13, Author: "mallionaire", ReviewID: 3, CreatedAt: ts("2021-01-18T10:09:05.410Z")},
			{Body: "I didn't know dogs could play games", Votes: 10, Author: "philippaclaire9", ReviewID: 3, CreatedAt: ts("2021-01-18T10:09:48.110Z")},
			{Body: "EPIC board game!", Votes: 16, Author: "bainesface", ReviewID: 2, CreatedAt: ts("2017-11-22T12:36:03.389Z")},
			{Body: "Now this is a story all about how, board games turned my life upside down", Votes: 13, Author: "mallionaire", ReviewID: 2, CreatedAt: ts("2021-01-18T10:24:05.410Z")},
			{Body: "Not sure about dogs, but my cat likes to get involved with board games, the boxes are their particular favourite", Votes: 10, Author: "philippaclaire9", ReviewID: 3, CreatedAt: ts("2021-03-27T19:48:58.110Z")},
		},
	}
}
