package cmd

import (
	"github.com/gitaurr/gitaurr/constants"
	"github.com/gitaurr/gitaurr/library"
	"github.com/gitaurr/gitaurr/persist"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gitaurr",
	Short: "Gitaurr tablature engine",
	Long:  `Gitaurr tablature engine: create, edit, store and export guitar tabs.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

var store *library.Store

func openStore() *library.Store {
	if store != nil {
		return store
	}
	store = library.NewStore(openGateway())
	return store
}

func openGateway() persist.Gateway {
	if table := constants.GetDynamoTable(); table != "" {
		gateway, err := persist.NewDynamoStore(table)
		if err != nil {
			panic("Could not connect to dynamo: " + err.Error())
		}
		return gateway
	}
	gateway, err := persist.NewFileStore(constants.GetDataDir())
	if err != nil {
		panic("Could not open data dir: " + err.Error())
	}
	return gateway
}
