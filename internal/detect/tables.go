package detect

// Dependency-name tables per ecosystem. Keys are lowercased; values are the
// framework display names reported in Result.Frameworks.

var npmPackages = map[string]string{
	// frontend
	"react":         "React",
	"react-dom":     "React",
	"vue":           "Vue.js",
	"@angular/core": "Angular",
	"svelte":        "Svelte",
	"solid-js":      "SolidJS",
	"preact":        "Preact",
	"jquery":        "jQuery",
	"lit":           "Lit",
	// meta-frameworks
	"next":             "Next.js",
	"nuxt":             "Nuxt.js",
	"@sveltejs/kit":    "SvelteKit",
	"gatsby":           "Gatsby",
	"astro":            "Astro",
	"@remix-run/react": "Remix",
	// backend
	"express":      "Express",
	"koa":          "Koa",
	"fastify":      "Fastify",
	"@nestjs/core": "NestJS",
	"@hapi/hapi":   "Hapi",
	"socket.io":    "Socket.IO",
	"ws":           "WebSockets",
	// state management
	"redux":            "Redux",
	"@reduxjs/toolkit": "Redux",
	"mobx":             "MobX",
	"zustand":          "Zustand",
	"vuex":             "Vuex",
	"pinia":            "Pinia",
	// UI libraries and CSS
	"@mui/material":     "Material-UI",
	"@material-ui/core": "Material-UI",
	"antd":              "Ant Design",
	"@chakra-ui/react":  "Chakra UI",
	"bootstrap":         "Bootstrap",
	"tailwindcss":       "Tailwind CSS",
	"styled-components": "Styled Components",
	"sass":              "Sass",
	"@storybook/react":  "Storybook",
	// testing
	"jest":                   "Jest",
	"mocha":                  "Mocha",
	"vitest":                 "Vitest",
	"cypress":                "Cypress",
	"@playwright/test":       "Playwright",
	"@testing-library/react": "Testing Library",
	"karma":                  "Karma",
	"puppeteer":              "Puppeteer",
	// build tools
	"webpack":     "Webpack",
	"vite":        "Vite",
	"rollup":      "Rollup",
	"esbuild":     "esbuild",
	"parcel":      "Parcel",
	"@babel/core": "Babel",
	// GraphQL
	"graphql":        "GraphQL",
	"@apollo/client": "Apollo",
	"apollo-server":  "Apollo",
	// ORMs and databases
	"prisma":         "Prisma",
	"@prisma/client": "Prisma",
	"typeorm":        "TypeORM",
	"sequelize":      "Sequelize",
	"mongoose":       "Mongoose",
	"pg":             "PostgreSQL",
	"mysql2":         "MySQL",
	"redis":          "Redis",
	// mobile and desktop
	"react-native":    "React Native",
	"expo":            "Expo",
	"@ionic/react":    "Ionic",
	"@ionic/angular":  "Ionic",
	"electron":        "Electron",
	"@tauri-apps/api": "Tauri",
	// misc
	"three":            "Three.js",
	"d3":               "D3.js",
	"@tensorflow/tfjs": "TensorFlow.js",
	"phaser":           "Phaser",
	"chart.js":         "Chart.js",
	"firebase":         "Firebase",
}

var pythonPackages = map[string]string{
	// backend
	"django":             "Django",
	"flask":              "Flask",
	"fastapi":            "FastAPI",
	"tornado":            "Tornado",
	"pyramid":            "Pyramid",
	"aiohttp":            "aiohttp",
	"celery":             "Celery",
	"graphene":           "GraphQL",
	"strawberry-graphql": "GraphQL",
	// data
	"numpy":          "NumPy",
	"pandas":         "Pandas",
	"scipy":          "SciPy",
	"matplotlib":     "Matplotlib",
	"seaborn":        "Seaborn",
	"plotly":         "Plotly",
	"pyspark":        "Apache Spark",
	"apache-airflow": "Apache Airflow",
	"airflow":        "Apache Airflow",
	"dask":           "Dask",
	"polars":         "Polars",
	"streamlit":      "Streamlit",
	"dash":           "Dash",
	"jupyter":        "Jupyter",
	"notebook":       "Jupyter",
	"jupyterlab":     "Jupyter",
	// machine learning
	"scikit-learn":  "scikit-learn",
	"sklearn":       "scikit-learn",
	"tensorflow":    "TensorFlow",
	"keras":         "Keras",
	"torch":         "PyTorch",
	"pytorch":       "PyTorch",
	"transformers":  "Hugging Face Transformers",
	"xgboost":       "XGBoost",
	"lightgbm":      "LightGBM",
	"opencv-python": "OpenCV",
	"cv2":           "OpenCV",
	"nltk":          "NLTK",
	"spacy":         "spaCy",
	"langchain":     "LangChain",
	// testing
	"pytest":     "pytest",
	"selenium":   "Selenium",
	"hypothesis": "Hypothesis",
	// ORMs
	"sqlalchemy":      "SQLAlchemy",
	"psycopg2":        "PostgreSQL",
	"psycopg2-binary": "PostgreSQL",
	"pymongo":         "MongoDB",
	"redis":           "Redis",
	// misc
	"scrapy":         "Scrapy",
	"beautifulsoup4": "BeautifulSoup",
	"bs4":            "BeautifulSoup",
	"pygame":         "Pygame",
	"kivy":           "Kivy",
	"pyqt5":          "PyQt",
	"pyqt6":          "PyQt",
	"tkinter":        "Tkinter",
	"sphinx":         "Sphinx",
	"mkdocs":         "MkDocs",
}

// goModules is matched by module-path prefix.
var goModules = map[string]string{
	"github.com/gin-gonic/gin":            "Gin",
	"github.com/labstack/echo":            "Echo",
	"github.com/gofiber/fiber":            "Fiber",
	"github.com/gorilla/mux":              "Gorilla Mux",
	"github.com/gorilla/websocket":        "WebSockets",
	"github.com/go-chi/chi":               "Chi",
	"gorm.io/gorm":                        "GORM",
	"github.com/jmoiron/sqlx":             "sqlx",
	"github.com/spf13/cobra":              "Cobra",
	"google.golang.org/grpc":              "gRPC",
	"github.com/stretchr/testify":         "Testify",
	"github.com/onsi/ginkgo":              "Ginkgo",
	"github.com/99designs/gqlgen":         "GraphQL",
	"github.com/charmbracelet/bubbletea":  "Bubble Tea",
	"k8s.io/client-go":                    "Kubernetes",
	"github.com/docker/docker":            "Docker",
	"github.com/redis/go-redis":           "Redis",
	"go.mongodb.org/mongo-driver":         "MongoDB",
	"github.com/jackc/pgx":                "PostgreSQL",
	"github.com/prometheus/client_golang": "Prometheus",
}

var rustCrates = map[string]string{
	"actix-web":    "Actix Web",
	"rocket":       "Rocket",
	"axum":         "Axum",
	"warp":         "Warp",
	"tokio":        "Tokio",
	"serde":        "Serde",
	"diesel":       "Diesel",
	"sqlx":         "SQLx",
	"bevy":         "Bevy",
	"tauri":        "Tauri",
	"yew":          "Yew",
	"leptos":       "Leptos",
	"clap":         "Clap",
	"tonic":        "gRPC",
	"wasm-bindgen": "WebAssembly",
}

var rubyGems = map[string]string{
	"rails":    "Ruby on Rails",
	"sinatra":  "Sinatra",
	"hanami":   "Hanami",
	"rspec":    "RSpec",
	"minitest": "Minitest",
	"capybara": "Capybara",
	"sidekiq":  "Sidekiq",
	"jekyll":   "Jekyll",
	"graphql":  "GraphQL",
	"pg":       "PostgreSQL",
	"redis":    "Redis",
}

var phpPackages = map[string]string{
	"laravel/framework":        "Laravel",
	"symfony/symfony":          "Symfony",
	"symfony/framework-bundle": "Symfony",
	"slim/slim":                "Slim",
	"cakephp/cakephp":          "CakePHP",
	"codeigniter4/framework":   "CodeIgniter",
	"phpunit/phpunit":          "PHPUnit",
	"doctrine/orm":             "Doctrine",
	"livewire/livewire":        "Livewire",
	"wordpress":                "WordPress",
}

// phpNamespaces maps the leading namespace of a `use` statement.
var phpNamespaces = map[string]string{
	"illuminate": "Laravel",
	"symfony":    "Symfony",
	"slim":       "Slim",
	"phpunit":    "PHPUnit",
	"doctrine":   "Doctrine",
	"livewire":   "Livewire",
}

// jvmPackages is matched by dotted package prefix for Java, Kotlin and
// Scala imports.
var jvmPackages = map[string]string{
	"org.springframework.boot": "Spring Boot",
	"org.springframework":      "Spring",
	"org.hibernate":            "Hibernate",
	"javax.persistence":        "Hibernate",
	"jakarta.persistence":      "Hibernate",
	"org.junit":                "JUnit",
	"org.mockito":              "Mockito",
	"org.testng":               "TestNG",
	"io.quarkus":               "Quarkus",
	"io.micronaut":             "Micronaut",
	"org.apache.spark":         "Apache Spark",
	"org.apache.kafka":         "Apache Kafka",
	"javafx":                   "JavaFX",
	"android":                  "Android",
	"androidx":                 "Android",
	"androidx.compose":         "Jetpack Compose",
	"io.ktor":                  "Ktor",
	"kotlinx.coroutines":       "Kotlin Coroutines",
	"akka":                     "Akka",
	"play.api":                 "Play Framework",
	"org.scalatest":            "ScalaTest",
	"lombok":                   "Lombok",
	"com.badlogic.gdx":         "libGDX",
}

// jvmKeywords is matched by substring over Maven coordinates and Gradle or
// sbt build scripts. Order is irrelevant; every hit counts.
var jvmKeywords = map[string]string{
	"spring-boot":             "Spring Boot",
	"org.springframework":     "Spring",
	"hibernate":               "Hibernate",
	"junit":                   "JUnit",
	"mockito":                 "Mockito",
	"testng":                  "TestNG",
	"quarkus":                 "Quarkus",
	"micronaut":               "Micronaut",
	"org.apache.spark":        "Apache Spark",
	"kafka":                   "Apache Kafka",
	"openjfx":                 "JavaFX",
	"com.android.application": "Android",
	"com.android.library":     "Android",
	"androidx.compose":        "Jetpack Compose",
	"io.ktor":                 "Ktor",
	"kotlinx-coroutines":      "Kotlin Coroutines",
	"com.typesafe.akka":       "Akka",
	"com.typesafe.play":       "Play Framework",
	"scalatest":               "ScalaTest",
	"lombok":                  "Lombok",
	"gdx":                     "libGDX",
}

// dotnetPackages is matched by dotted prefix, case-insensitively.
var dotnetPackages = map[string]string{
	"microsoft.aspnetcore.components":  "Blazor",
	"microsoft.aspnetcore":             "ASP.NET Core",
	"microsoft.net.sdk.web":            "ASP.NET Core",
	"microsoft.entityframeworkcore":    "Entity Framework",
	"xunit":                            "xUnit",
	"nunit":                            "NUnit",
	"mstest":                           "MSTest",
	"microsoft.visualstudio.testtools": "MSTest",
	"xamarin.forms":                    "Xamarin",
	"microsoft.maui":                   "MAUI",
	"unityengine":                      "Unity",
	"system.windows":                   "WPF",
	"monogame":                         "MonoGame",
}

var dartPackages = map[string]string{
	"flutter":          "Flutter",
	"flutter_bloc":     "BLoC",
	"bloc":             "BLoC",
	"provider":         "Provider",
	"riverpod":         "Riverpod",
	"flutter_riverpod": "Riverpod",
	"get":              "GetX",
	"firebase_core":    "Firebase",
	"flame":            "Flame",
	"flutter_test":     "Flutter Test",
}

// swiftModules covers Swift imports, CocoaPods pods and SwiftPM packages.
var swiftModules = map[string]string{
	"swiftui":                       "SwiftUI",
	"uikit":                         "UIKit",
	"vapor":                         "Vapor",
	"alamofire":                     "Alamofire",
	"spritekit":                     "SpriteKit",
	"scenekit":                      "SceneKit",
	"arkit":                         "ARKit",
	"realitykit":                    "RealityKit",
	"coreml":                        "Core ML",
	"rxswift":                       "RxSwift",
	"snapkit":                       "SnapKit",
	"firebase":                      "Firebase",
	"xctest":                        "XCTest",
	"swift-composable-architecture": "Composable Architecture",
}

// cHeaders maps the first include path segment, without extension.
var cHeaders = map[string]string{
	"opencv2":      "OpenCV",
	"gtest":        "Google Test",
	"gmock":        "Google Test",
	"catch2":       "Catch2",
	"boost":        "Boost",
	"sdl2":         "SDL",
	"sdl":          "SDL",
	"glfw":         "OpenGL",
	"gl":           "OpenGL",
	"vulkan":       "Vulkan",
	"eigen":        "Eigen",
	"cuda_runtime": "CUDA",
	"qapplication": "Qt",
	"qtwidgets":    "Qt",
	"qtcore":       "Qt",
	"qtgui":        "Qt",
	"raylib":       "raylib",
}

// cmakeKeywords is matched by substring over a lowercased CMakeLists.txt.
var cmakeKeywords = map[string]string{
	"find_package(qt":     "Qt",
	"find_package(opencv": "OpenCV",
	"find_package(boost":  "Boost",
	"find_package(sdl2":   "SDL",
	"find_package(opengl": "OpenGL",
	"find_package(vulkan": "Vulkan",
	"gtest":               "Google Test",
	"catch2":              "Catch2",
	"cuda":                "CUDA",
}

// dockerImages maps a container image base name (registry and tag removed)
// to the service it provides.
var dockerImages = map[string]string{
	"docker-compose": "Docker Compose",
	"postgres":       "PostgreSQL",
	"mysql":          "MySQL",
	"mariadb":        "MySQL",
	"mongo":          "MongoDB",
	"redis":          "Redis",
	"nginx":          "Nginx",
	"rabbitmq":       "RabbitMQ",
	"elasticsearch":  "Elasticsearch",
	"kafka":          "Apache Kafka",
	"cp-kafka":       "Apache Kafka",
	"prometheus":     "Prometheus",
	"grafana":        "Grafana",
}

// shellCommands maps commands invoked by shell scripts.
var shellCommands = map[string]string{
	"docker":           "Docker",
	"docker-compose":   "Docker Compose",
	"kubectl":          "Kubernetes",
	"helm":             "Helm",
	"terraform":        "Terraform",
	"ansible":          "Ansible",
	"ansible-playbook": "Ansible",
	"vagrant":          "Vagrant",
	"aws":              "AWS",
	"gcloud":           "Google Cloud",
	"az":               "Azure",
}

// Framework config files recognized by exact lowercased name.
var filenameMarkers = map[string]string{
	"dockerfile":           "Docker",
	"angular.json":         "Angular",
	"vue.config.js":        "Vue.js",
	"svelte.config.js":     "Svelte",
	"webpack.config.js":    "Webpack",
	"karma.conf.js":        "Karma",
	"gatsby-config.js":     "Gatsby",
	"astro.config.mjs":     "Astro",
	"remix.config.js":      "Remix",
	"cypress.json":         "Cypress",
	"manage.py":            "Django",
	"pytest.ini":           "pytest",
	"conftest.py":          "pytest",
	"jenkinsfile":          "Jenkins",
	".gitlab-ci.yml":       "GitLab CI",
	"project.godot":        "Godot",
	"mkdocs.yml":           "MkDocs",
	"docusaurus.config.js": "Docusaurus",
	"hugo.toml":            "Hugo",
	"_config.yml":          "Jekyll",
	"ansible.cfg":          "Ansible",
	"vagrantfile":          "Vagrant",
	"serverless.yml":       "Serverless Framework",
	"projectversion.txt":   "Unity",
}

// Framework config files recognized by name prefix, for the ones that
// exist in several extensions (next.config.js, next.config.mjs, ...).
var filenamePrefixMarkers = map[string]string{
	"next.config.":       "Next.js",
	"nuxt.config.":       "Nuxt.js",
	"vite.config.":       "Vite",
	"tailwind.config.":   "Tailwind CSS",
	"jest.config.":       "Jest",
	"cypress.config.":    "Cypress",
	"playwright.config.": "Playwright",
	"vitest.config.":     "Vitest",
	"dockerfile.":        "Docker",
}

// Files recognized by extension.
var extensionMarkers = map[string]string{
	".tf":       "Terraform",
	".uproject": "Unreal Engine",
	".ipynb":    "Jupyter",
	".unity":    "Unity",
}
