package seed

import "time"

const newspaperImg = "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"

func at(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// TestData is the canonical fixture used by integration tests.
//
//   - topic "paper" exists but has no articles
//   - article 1 (butter_bridge, mitch, 100 votes) owns comments 1-11
//   - article 2 has no comments
func TestData() Data {
	return Data{
		Topics: []TopicRow{
			{Slug: "mitch", Description: "The man, the Mitch, the legend"},
			{Slug: "cats", Description: "Not dogs"},
			{Slug: "paper", Description: "what books are made of"},
		},
		Users: []UserRow{
			{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
			{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
			{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.jpg"},
		},
		Articles: []ArticleRow{
			{Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", CreatedAt: at(1594329060000), Votes: 100, ImgURL: newspaperImg},
			{Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars", Body: "Call me Mitchell. Some years ago having little or no money in my purse I thought I would buy a laptop.", CreatedAt: at(1602828180000), ImgURL: newspaperImg},
			{Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars", Body: "some gifs", CreatedAt: at(1604394720000), ImgURL: newspaperImg},
			{Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop", Body: "We all love Mitch and his wonderful, unique typing style.", CreatedAt: at(1588731240000), ImgURL: newspaperImg},
			{Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop", Body: "Bastet walks amongst us, and the cats are taking arms!", CreatedAt: at(1596464040000), ImgURL: newspaperImg},
			{Title: "A", Topic: "mitch", Author: "icellusedkars", Body: "Delicious tin of cat food", CreatedAt: at(1602986000000), ImgURL: newspaperImg},
			{Title: "Z", Topic: "mitch", Author: "icellusedkars", Body: "I was hungry.", CreatedAt: at(1578406080000), ImgURL: newspaperImg},
			{Title: "Does Mitch predate civilisation?", Topic: "mitch", Author: "icellusedkars", Body: "Archaeologists have uncovered a gigantic statue from the dawn of humanity.", CreatedAt: at(1587089280000), ImgURL: newspaperImg},
			{Title: "They're not exactly dogs, are they?", Topic: "mitch", Author: "butter_bridge", Body: "Well? Think about it.", CreatedAt: at(1591438200000), ImgURL: newspaperImg},
			{Title: "Seven inspirational thought leaders from Manchester UK", Topic: "mitch", Author: "rogersop", Body: "Who are we kidding, there is only one, and it's Mitch!", CreatedAt: at(1589433300000), ImgURL: newspaperImg},
			{Title: "Am I a cat?", Topic: "mitch", Author: "icellusedkars", Body: "Having run out of ideas for articles, I am staring at the wall.", CreatedAt: at(1579126860000), ImgURL: newspaperImg},
			{Title: "Moustache", Topic: "mitch", Author: "butter_bridge", Body: "Have you seen the size of that thing?", CreatedAt: at(1602419040000), ImgURL: newspaperImg},
			{Title: "Another article about Mitch", Topic: "mitch", Author: "butter_bridge", Body: "There will never be enough articles about Mitch!", CreatedAt: at(1602419040000), ImgURL: newspaperImg},
		},
		Comments: []CommentRow{
			{ArticleID: 1, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose, pal!", Votes: 16, CreatedAt: at(1586179020000)},
			{ArticleID: 1, Author: "butter_bridge", Body: "The beautiful thing about treasure is that it exists.", Votes: 14, CreatedAt: at(1604113380000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide.", Votes: 100, CreatedAt: at(1583025180000)},
			{ArticleID: 1, Author: "icellusedkars", Body: " I carry a log, yes. Is it funny to you? It is not to me.", Votes: -100, CreatedAt: at(1582459260000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming noses", CreatedAt: at(1604437200000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming eyes even more", CreatedAt: at(1586642520000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "Lobster pot", CreatedAt: at(1589577540000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "Delicious crackerbreads", CreatedAt: at(1586899140000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "Superficially charming", CreatedAt: at(1577848080000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "git push origin master", CreatedAt: at(1592641440000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "Ambidextrous marsupial", CreatedAt: at(1600560600000)},
			{ArticleID: 3, Author: "icellusedkars", Body: "Massive intercranial brain haemorrhage", CreatedAt: at(1583133000000)},
			{ArticleID: 3, Author: "icellusedkars", Body: "Fruit pastilles", CreatedAt: at(1592220300000)},
			{ArticleID: 5, Author: "butter_bridge", Body: "What do you see? I have no idea where this will lead us. This place I speak of, is known as the Black Lodge.", Votes: 16, CreatedAt: at(1591682400000)},
			{ArticleID: 5, Author: "butter_bridge", Body: "I am 100% sure that we're not completely sure.", Votes: 1, CreatedAt: at(1606176480000)},
			{ArticleID: 6, Author: "butter_bridge", Body: "This is a bad article name", Votes: 1, CreatedAt: at(1602433380000)},
			{ArticleID: 9, Author: "icellusedkars", Body: "The owls are not what they seem.", Votes: 20, CreatedAt: at(1584205320000)},
			{ArticleID: 9, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose, pal!", Votes: 16, CreatedAt: at(1586179020000)},
		},
	}
}

// DevelopmentData extends the test fixture with extra topics and articles
// for local browsing.
func DevelopmentData() Data {
	data := TestData()

	data.Topics = append(data.Topics,
		TopicRow{Slug: "coding", Description: "Code is love, code is life"},
		TopicRow{Slug: "football", Description: "FOOTIE!"},
		TopicRow{Slug: "cooking", Description: "Hey good looking, what you got cooking?"},
	)
	data.Users = append(data.Users,
		UserRow{Username: "tickle122", Name: "Tom Tickle", AvatarURL: "https://vignette.wikia.nocookie.net/mrmen/images/d/d6/Mr-Tickle-9a.png/revision/latest?cb=20180127221953"},
		UserRow{Username: "grumpy19", Name: "Paul Grump", AvatarURL: "https://vignette.wikia.nocookie.net/mrmen/images/7/78/Mr-Grumpy-3A.PNG/revision/latest?cb=20170707233013"},
	)

	base := len(data.Articles)
	data.Articles = append(data.Articles,
		ArticleRow{Title: "Running a Node App", Topic: "coding", Author: "tickle122", Body: "This is part two of a series on how to get up and running with Systemd and Node.js.", CreatedAt: at(1604728980000)},
		ArticleRow{Title: "The Rise Of Thinking Machines", Topic: "coding", Author: "tickle122", Body: "Many people know Watson as the IBM-developed cognitive super computer.", CreatedAt: at(1589418120000)},
		ArticleRow{Title: "Who are the most followed clubs on Instagram?", Topic: "football", Author: "grumpy19", Body: "Manchester United are another big Premier League side.", CreatedAt: at(1582125300000)},
		ArticleRow{Title: "Seafood substitutions are increasing", Topic: "cooking", Author: "grumpy19", Body: "Its not an exaggeration to say that seafood fraud is widespread.", CreatedAt: at(1527695953341)},
	)
	data.Comments = append(data.Comments,
		CommentRow{ArticleID: base + 1, Author: "tickle122", Body: "Itaque quisquam est similique et est perspiciatis reprehenderit voluptatem autem.", Votes: -1, CreatedAt: at(1590103140000)},
		CommentRow{ArticleID: base + 2, Author: "grumpy19", Body: "Nobis consequatur animi. Ullam nobis quaerat voluptates veniam.", Votes: 7, CreatedAt: at(1578406080000)},
		CommentRow{ArticleID: base + 4, Author: "tickle122", Body: "Qui sunt sit voluptas repellendus sed.", Votes: 4, CreatedAt: at(1598296680000)},
	)

	return data
}
