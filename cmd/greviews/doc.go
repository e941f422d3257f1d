// Greviews analyzes Google Business Profile reviews exported with Google
// Takeout.
//
// It loads every reviews*.json file under the Takeout archive, filters
// reviews by year, month, and star rating, and uses named-entity
// recognition to count the person names mentioned in review comments.
// Filtered reviews and the name tally can be exported as CSV.
//
// Usage:
//
//	greviews analyze                                  # analyze all reviews
//	greviews analyze --year 2025 --month 8            # filter by August 2025
//	greviews analyze --stars FOUR,FIVE                # only 4-5 star reviews
//	greviews analyze --year 2025 --show-reviews       # display filtered reviews
//	greviews analyze --export-reviews reviews.csv     # export reviews CSV
//	greviews analyze --export-names names.csv         # export name analysis CSV
//	greviews config init                              # create a config file
package main
