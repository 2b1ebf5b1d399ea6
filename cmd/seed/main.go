// Seeds the database with a demo survey and a few responses, for local
// frontend work against realistic data.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"surveylink/internal/link"
	"surveylink/internal/model"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB_NAME")
	if dbName == "" {
		dbName = "surveylink"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)

	token, err := link.Generate()
	if err != nil {
		log.Fatalf("Failed to generate shareable link: %v", err)
	}

	survey := model.Survey{
		Title:       "Lunch Preferences",
		Description: "Help us plan next week's team lunches.",
		Questions: []model.Question{
			{
				QuestionText: "Pick one main course",
				QuestionType: model.QuestionTypeSingle,
				Options:      []string{"Pizza", "Salad", "Ramen"},
			},
			{
				QuestionText: "Which sides would you eat?",
				QuestionType: model.QuestionTypeMultiple,
				Options:      []string{"Fries", "Soup", "Fruit"},
			},
			{
				QuestionText: "Anything else we should know?",
				QuestionType: model.QuestionTypeText,
			},
		},
		ShareableLink: token,
		CreatedAt:     time.Now(),
	}

	res, err := db.Collection("surveys").InsertOne(ctx, &survey)
	if err != nil {
		log.Fatalf("Failed to insert survey: %v", err)
	}
	surveyID, _ := res.InsertedID.(primitive.ObjectID)

	seedResponses := []map[string]model.AnswerValues{
		{"0": {"Pizza"}, "1": {"Fries", "Fruit"}, "2": {"More vegetarian options please"}},
		{"0": {"Pizza"}, "1": {"Soup"}},
		{"0": {"Salad"}, "1": {"Fruit"}, "2": {"All good"}},
	}
	for _, answers := range seedResponses {
		response := model.Response{
			SurveyID:    surveyID,
			Responses:   answers,
			SubmittedAt: time.Now(),
		}
		if _, err := db.Collection("responses").InsertOne(ctx, &response); err != nil {
			log.Fatalf("Failed to insert response: %v", err)
		}
	}

	fmt.Printf("Seeded survey %s with %d responses\n", surveyID.Hex(), len(seedResponses))
	fmt.Printf("Shareable link: %s\n", token)
}
